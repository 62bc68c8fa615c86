package cart

import "github.com/sangkips/investify-pos/internal/domain/entity"

// CanAdd reports whether quantityToAdd more units of id stay within maxStock.
// The store clamps on its own; this is for callers that want to warn first.
func CanAdd(items []entity.LineItem, id string, quantityToAdd, maxStock int) bool {
	return existingQuantity(items, id)+quantityToAdd <= maxStock
}

func existingQuantity(items []entity.LineItem, id string) int {
	for _, item := range items {
		if item.ID == id {
			return item.Quantity
		}
	}
	return 0
}
