// Package cart holds the point-of-sale cart state and the pricing rules derived from it.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/sangkips/investify-pos/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Snapshot is an immutable copy of the cart state used for pricing
type Snapshot struct {
	Items    []entity.LineItem
	Discount entity.DiscountConfig
}

// Store holds the line items and discount configuration of one cart.
// A Store has a single owner and does no locking of its own.
type Store struct {
	items    []entity.LineItem
	discount entity.DiscountConfig
}

// NewStore creates an empty cart
func NewStore() *Store {
	return &Store{}
}

// AddItem merges quantityToAdd units of candidate into the cart, capped at candidate.MaxStock
func (s *Store) AddItem(candidate entity.LineItem, quantityToAdd int) {
	if i := s.indexOf(candidate.ID); i >= 0 {
		s.items[i].MaxStock = candidate.MaxStock
		s.setQuantityAt(i, min(s.items[i].Quantity+quantityToAdd, candidate.MaxStock))
		return
	}

	qty := min(quantityToAdd, candidate.MaxStock)
	if qty <= 0 {
		return
	}
	candidate.Quantity = qty
	s.items = append(s.items, candidate)
}

// SetQuantity sets the quantity of an existing item; quantity <= 0 removes it
func (s *Store) SetQuantity(id string, quantity int) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.removeAt(i)
		return
	}
	s.setQuantityAt(i, min(quantity, s.items[i].MaxStock))
}

// SetQuantityWithStock is SetQuantity with a fresh stock ceiling for the item
func (s *Store) SetQuantityWithStock(id string, quantity, maxStock int) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.removeAt(i)
		return
	}
	s.items[i].MaxStock = maxStock
	s.setQuantityAt(i, min(quantity, maxStock))
}

// RemoveItem deletes the item if present
func (s *Store) RemoveItem(id string) {
	if i := s.indexOf(id); i >= 0 {
		s.removeAt(i)
	}
}

// Clear empties the cart and resets the discount configuration
func (s *Store) Clear() {
	s.items = nil
	s.discount = entity.DiscountConfig{}
}

// SetDiscount merges the supplied fields into the discount configuration
func (s *Store) SetDiscount(patch entity.DiscountPatch) {
	if patch.PercentDiscount != nil {
		s.discount.PercentDiscount = clampPercent(*patch.PercentDiscount)
	}
	if patch.FlatSpecialDiscount != nil {
		s.discount.FlatSpecialDiscount = decimal.Max(decimal.Zero, *patch.FlatSpecialDiscount)
	}
	if patch.DiscountID != nil {
		s.discount.DiscountID = *patch.DiscountID
	}
	if patch.DiscountName != nil {
		s.discount.DiscountName = *patch.DiscountName
	}
	if patch.SeniorID != nil {
		s.discount.SeniorID = *patch.SeniorID
	}
}

// SetItemStock updates the stock ceiling of an item, lowering its quantity if needed
func (s *Store) SetItemStock(id string, maxStock int) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items[i].MaxStock = maxStock
	if s.items[i].Quantity > maxStock {
		s.setQuantityAt(i, maxStock)
	}
}

// Items returns a copy of the line items in insertion order
func (s *Store) Items() []entity.LineItem {
	if len(s.items) == 0 {
		return []entity.LineItem{}
	}
	out := make([]entity.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Item returns the line item with the given id
func (s *Store) Item(id string) (entity.LineItem, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return entity.LineItem{}, false
}

// Discount returns the current discount configuration
func (s *Store) Discount() entity.DiscountConfig {
	return s.discount
}

// Snapshot copies the current state for pricing
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Items: s.Items(), Discount: s.discount}
}

// Len returns the number of distinct line items
func (s *Store) Len() int {
	return len(s.items)
}

// TotalQuantity returns the number of units across all line items
func (s *Store) TotalQuantity() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no line items
func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// setQuantityAt keeps 1 <= quantity: anything lower drops the line.
func (s *Store) setQuantityAt(i, quantity int) {
	if quantity <= 0 {
		s.removeAt(i)
		return
	}
	s.items[i].Quantity = quantity
}

func (s *Store) removeAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	return decimal.Min(hundred, decimal.Max(decimal.Zero, p))
}
