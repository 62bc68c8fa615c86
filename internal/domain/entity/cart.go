package entity

import "github.com/shopspring/decimal"

// LineItem represents a product held in a cart
type LineItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	MaxStock       int             `json:"max_stock"`
	IsDiscountable bool            `json:"is_discountable"`
}

// LineTotal returns unit price times quantity
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// DiscountConfig holds the discounts applied to a cart.
// Empty metadata strings mean the value is unset.
type DiscountConfig struct {
	PercentDiscount     decimal.Decimal `json:"percent_discount"`
	FlatSpecialDiscount decimal.Decimal `json:"flat_special_discount"`
	DiscountID          string          `json:"discount_id,omitempty"`
	DiscountName        string          `json:"discount_name,omitempty"`
	SeniorID            string          `json:"senior_id,omitempty"`
}

// DiscountPatch is a partial update of DiscountConfig; nil fields are left unchanged
type DiscountPatch struct {
	PercentDiscount     *decimal.Decimal
	FlatSpecialDiscount *decimal.Decimal
	DiscountID          *string
	DiscountName        *string
	SeniorID            *string
}

// TaxConfig holds the VAT settings supplied by the system settings
type TaxConfig struct {
	VATEnabled     bool            `json:"vat_enabled"`
	VATRatePercent decimal.Decimal `json:"vat_rate_percent"`
}

// PricingResult is the read-only set of figures derived from a cart
type PricingResult struct {
	Subtotal              decimal.Decimal `json:"subtotal"`
	VATAmount             decimal.Decimal `json:"vat_amount"`
	DiscountableSubtotal  decimal.Decimal `json:"discountable_subtotal"`
	DiscountableVATAmount decimal.Decimal `json:"discountable_vat_amount"`
	BaseTotal             decimal.Decimal `json:"base_total"`
	DiscountableBase      decimal.Decimal `json:"discountable_base"`
	RegularDiscountAmount decimal.Decimal `json:"regular_discount_amount"`
	SpecialDiscountAmount decimal.Decimal `json:"special_discount_amount"`
	FinalTotal            decimal.Decimal `json:"final_total"`
}

// CartView is what the cart display consumes
type CartView struct {
	Items         []LineItem     `json:"items"`
	ItemCount     int            `json:"item_count"`
	TotalQuantity int            `json:"total_quantity"`
	Discount      DiscountConfig `json:"discount"`
	Pricing       PricingResult  `json:"pricing"`
}
