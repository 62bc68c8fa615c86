package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sangkips/investify-pos/pkg/apperror"
)

// Product represents a catalog entry as supplied by inventory
type Product struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	Quantity       int       `json:"quantity"`      // Units in stock
	SellingPrice   int64     `json:"selling_price"` // Stored in cents
	IsDiscountable bool      `json:"is_discountable"`
}

// GetSellingPriceDecimal returns the selling price as a decimal
func (p *Product) GetSellingPriceDecimal() decimal.Decimal {
	return decimal.New(p.SellingPrice, -2)
}

// Validate checks the fields the cart relies on
func (p *Product) Validate() error {
	var fieldErrors []apperror.FieldError
	if p.ID == uuid.Nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "id", Message: "is required"})
	}
	if p.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "is required"})
	}
	if p.SellingPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "selling_price", Message: "must be non-negative"})
	}
	if p.Quantity < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "must be non-negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// ToLineItem converts the product into a cart line item candidate.
// Quantity is left at zero; the cart decides it.
func (p *Product) ToLineItem() LineItem {
	return LineItem{
		ID:             p.ID.String(),
		Name:           p.Name,
		UnitPrice:      p.GetSellingPriceDecimal(),
		MaxStock:       p.Quantity,
		IsDiscountable: p.IsDiscountable,
	}
}
