package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAdd(t *testing.T) {
	s := NewStore()
	s.AddItem(item("A", "10", 5, true), 3)
	items := s.Items()

	tests := []struct {
		name     string
		id       string
		qty      int
		maxStock int
		want     bool
	}{
		{name: "room left", id: "A", qty: 2, maxStock: 5, want: true},
		{name: "exceeds stock", id: "A", qty: 3, maxStock: 5, want: false},
		{name: "new item within stock", id: "B", qty: 4, maxStock: 4, want: true},
		{name: "new item over stock", id: "B", qty: 5, maxStock: 4, want: false},
		{name: "out of stock", id: "B", qty: 1, maxStock: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAdd(items, tt.id, tt.qty, tt.maxStock))
		})
	}
}

func TestCanAdd_StoreClampsWhenGuardSkipped(t *testing.T) {
	s := NewStore()
	s.AddItem(item("A", "10", 5, true), 3)
	assert.False(t, CanAdd(s.Items(), "A", 4, 5))

	s.AddItem(item("A", "10", 5, true), 4)
	got, _ := s.Item("A")
	assert.Equal(t, 5, got.Quantity)
}
