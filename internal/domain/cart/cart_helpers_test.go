package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sangkips/investify-pos/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func item(id, price string, maxStock int, discountable bool) entity.LineItem {
	return entity.LineItem{
		ID:             id,
		Name:           "Item " + id,
		UnitPrice:      dec(price),
		MaxStock:       maxStock,
		IsDiscountable: discountable,
	}
}

func assertQuantitiesWithinStock(t *testing.T, s *Store) {
	t.Helper()
	for _, li := range s.Items() {
		assert.GreaterOrEqualf(t, li.Quantity, 1, "item %s", li.ID)
		assert.LessOrEqualf(t, li.Quantity, li.MaxStock, "item %s", li.ID)
	}
}
