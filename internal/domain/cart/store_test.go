package cart

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/investify-pos/internal/domain/entity"
)

func TestStore_AddItem_ClampsToStock(t *testing.T) {
	s := NewStore()
	s.AddItem(item("X", "10", 5, true), 8)

	got, ok := s.Item("X")
	require.True(t, ok)
	assert.Equal(t, 5, got.Quantity)
}

func TestStore_AddItem_MergesAndRefreshesStock(t *testing.T) {
	s := NewStore()
	s.AddItem(item("A", "100", 10, true), 3)
	s.AddItem(item("A", "100", 4, true), 3)

	require.Equal(t, 1, s.Len())
	got, _ := s.Item("A")
	assert.Equal(t, 4, got.Quantity)
	assert.Equal(t, 4, got.MaxStock)

	s.AddItem(item("A", "100", 20, true), 2)
	got, _ = s.Item("A")
	assert.Equal(t, 6, got.Quantity)
	assert.Equal(t, 20, got.MaxStock)
}

func TestStore_AddItem_NothingToAdd(t *testing.T) {
	tests := []struct {
		name     string
		maxStock int
		qty      int
	}{
		{name: "out of stock", maxStock: 0, qty: 2},
		{name: "zero quantity", maxStock: 5, qty: 0},
		{name: "negative quantity", maxStock: 5, qty: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.AddItem(item("X", "10", tt.maxStock, true), tt.qty)
			assert.True(t, s.IsEmpty())
		})
	}
}

func TestStore_AddItem_PreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	s.AddItem(item("B", "1", 5, true), 1)
	s.AddItem(item("A", "1", 5, true), 1)
	s.AddItem(item("B", "1", 5, true), 1)

	ids := lo.Map(s.Items(), func(li entity.LineItem, _ int) string { return li.ID })
	assert.Equal(t, []string{"B", "A"}, ids)
}

func TestStore_SetQuantity(t *testing.T) {
	s := NewStore()
	s.AddItem(item("X", "10", 5, true), 2)
	s.AddItem(item("Y", "10", 5, true), 1)

	s.SetQuantity("X", 4)
	got, _ := s.Item("X")
	assert.Equal(t, 4, got.Quantity)

	s.SetQuantity("X", 50)
	got, _ = s.Item("X")
	assert.Equal(t, 5, got.Quantity)

	s.SetQuantity("X", 0)
	_, ok := s.Item("X")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	// absent ids do not come back through SetQuantity
	s.SetQuantity("X", 3)
	_, ok = s.Item("X")
	assert.False(t, ok)

	s.SetQuantity("Y", -1)
	assert.True(t, s.IsEmpty())
}

func TestStore_SetQuantityWithStock(t *testing.T) {
	s := NewStore()
	s.AddItem(item("X", "10", 5, true), 2)

	s.SetQuantityWithStock("X", 9, 8)
	got, _ := s.Item("X")
	assert.Equal(t, 8, got.Quantity)
	assert.Equal(t, 8, got.MaxStock)

	s.SetQuantityWithStock("X", 3, 10)
	got, _ = s.Item("X")
	assert.Equal(t, 3, got.Quantity)
	assert.Equal(t, 10, got.MaxStock)

	s.SetQuantityWithStock("X", 2, 0)
	assert.True(t, s.IsEmpty())

	s.SetQuantityWithStock("missing", 2, 10)
	assert.True(t, s.IsEmpty())
}

func TestStore_RemoveItem(t *testing.T) {
	s := NewStore()
	s.AddItem(item("A", "10", 5, true), 1)
	s.AddItem(item("B", "10", 5, true), 1)

	s.RemoveItem("A")
	s.RemoveItem("missing")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "B", s.Items()[0].ID)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.AddItem(item("A", "10", 5, true), 2)
	s.SetDiscount(entity.DiscountPatch{
		PercentDiscount:     lo.ToPtr(dec("20")),
		FlatSpecialDiscount: lo.ToPtr(dec("5")),
		DiscountID:          lo.ToPtr("disc-1"),
		DiscountName:        lo.ToPtr("Senior"),
		SeniorID:            lo.ToPtr("SC-001"),
	})

	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Items())
	d := s.Discount()
	assertDecimal(t, "0", d.PercentDiscount)
	assertDecimal(t, "0", d.FlatSpecialDiscount)
	assert.Empty(t, d.DiscountID)
	assert.Empty(t, d.DiscountName)
	assert.Empty(t, d.SeniorID)
}

func TestStore_SetDiscount_Clamps(t *testing.T) {
	tests := []struct {
		name        string
		percent     string
		flat        string
		wantPercent string
		wantFlat    string
	}{
		{name: "in range", percent: "15", flat: "20", wantPercent: "15", wantFlat: "20"},
		{name: "percent above 100", percent: "150", flat: "0", wantPercent: "100", wantFlat: "0"},
		{name: "negative percent", percent: "-5", flat: "0", wantPercent: "0", wantFlat: "0"},
		{name: "negative flat", percent: "10", flat: "-30", wantPercent: "10", wantFlat: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.SetDiscount(entity.DiscountPatch{
				PercentDiscount:     lo.ToPtr(dec(tt.percent)),
				FlatSpecialDiscount: lo.ToPtr(dec(tt.flat)),
			})
			assertDecimal(t, tt.wantPercent, s.Discount().PercentDiscount)
			assertDecimal(t, tt.wantFlat, s.Discount().FlatSpecialDiscount)
		})
	}
}

func TestStore_SetDiscount_PartialMerge(t *testing.T) {
	s := NewStore()
	s.SetDiscount(entity.DiscountPatch{
		PercentDiscount: lo.ToPtr(dec("10")),
		DiscountID:      lo.ToPtr("disc-1"),
	})
	s.SetDiscount(entity.DiscountPatch{FlatSpecialDiscount: lo.ToPtr(dec("5"))})

	d := s.Discount()
	assertDecimal(t, "10", d.PercentDiscount)
	assertDecimal(t, "5", d.FlatSpecialDiscount)
	assert.Equal(t, "disc-1", d.DiscountID)

	s.SetDiscount(entity.DiscountPatch{DiscountID: lo.ToPtr("")})
	assert.Empty(t, s.Discount().DiscountID)
	assertDecimal(t, "10", s.Discount().PercentDiscount)
}

func TestStore_SetDiscount_Idempotent(t *testing.T) {
	s := NewStore()
	patch := entity.DiscountPatch{
		PercentDiscount: lo.ToPtr(dec("150")),
		SeniorID:        lo.ToPtr("SC-9"),
	}

	s.SetDiscount(patch)
	first := s.Discount()
	s.SetDiscount(patch)
	second := s.Discount()

	assert.True(t, first.PercentDiscount.Equal(second.PercentDiscount))
	assert.True(t, first.FlatSpecialDiscount.Equal(second.FlatSpecialDiscount))
	assert.Equal(t, first.SeniorID, second.SeniorID)
}

func TestStore_DiscountSurvivesItemMutations(t *testing.T) {
	s := NewStore()
	s.SetDiscount(entity.DiscountPatch{PercentDiscount: lo.ToPtr(dec("10"))})
	s.AddItem(item("A", "10", 5, true), 2)
	s.SetQuantity("A", 0)

	assertDecimal(t, "10", s.Discount().PercentDiscount)
}

func TestStore_SetItemStock(t *testing.T) {
	s := NewStore()
	s.AddItem(item("A", "10", 10, true), 6)

	s.SetItemStock("A", 8)
	got, _ := s.Item("A")
	assert.Equal(t, 6, got.Quantity)
	assert.Equal(t, 8, got.MaxStock)

	s.SetItemStock("A", 4)
	got, _ = s.Item("A")
	assert.Equal(t, 4, got.Quantity)

	s.SetItemStock("A", 0)
	assert.True(t, s.IsEmpty())

	s.SetItemStock("missing", 3)
	assert.True(t, s.IsEmpty())
}

func TestStore_ClampLawAcrossMutations(t *testing.T) {
	s := NewStore()
	s.AddItem(item("A", "10", 3, true), 10)
	s.AddItem(item("B", "5", 7, false), 4)
	s.AddItem(item("A", "10", 2, true), 1)
	s.SetQuantity("B", 99)
	s.SetQuantityWithStock("B", 6, 5)
	s.SetItemStock("A", 1)
	s.AddItem(item("C", "1", 1, true), 1)
	s.AddItem(item("C", "1", 1, true), 1)

	assert.Equal(t, 3, s.Len())
	assertQuantitiesWithinStock(t, s)
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.AddItem(item("A", "10", 5, true), 2)

	items := s.Items()
	items[0].Quantity = 99

	got, _ := s.Item("A")
	assert.Equal(t, 2, got.Quantity)
}

func TestStore_Counts(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.TotalQuantity())

	s.AddItem(item("A", "10", 5, true), 2)
	s.AddItem(item("B", "10", 5, true), 3)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 5, s.TotalQuantity())
}
