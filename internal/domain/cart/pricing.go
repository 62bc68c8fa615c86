package cart

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/sangkips/investify-pos/internal/domain/entity"
)

// Calculate derives the cart totals from a snapshot and the tax settings.
//
// VAT is computed separately on the whole cart and on the discountable items.
// Discounts only ever reduce the discountable portion (its subtotal plus VAT):
// the percentage discount comes first, then the flat special discount capped
// at whatever the percentage discount left.
func Calculate(snap Snapshot, tax entity.TaxConfig) entity.PricingResult {
	subtotal := sumLines(snap.Items)
	discountableSubtotal := sumLines(lo.Filter(snap.Items, func(item entity.LineItem, _ int) bool {
		return item.IsDiscountable
	}))

	vatAmount := vat(subtotal, tax)
	discountableVATAmount := vat(discountableSubtotal, tax)

	baseTotal := subtotal.Add(vatAmount)
	discountableBase := discountableSubtotal.Add(discountableVATAmount)

	regular := discountableBase.Mul(snap.Discount.PercentDiscount).Shift(-2)
	remaining := decimal.Max(decimal.Zero, discountableBase.Sub(regular))
	special := decimal.Min(snap.Discount.FlatSpecialDiscount, remaining)

	finalTotal := decimal.Max(decimal.Zero, baseTotal.Sub(regular).Sub(special))

	return entity.PricingResult{
		Subtotal:              subtotal,
		VATAmount:             vatAmount,
		DiscountableSubtotal:  discountableSubtotal,
		DiscountableVATAmount: discountableVATAmount,
		BaseTotal:             baseTotal,
		DiscountableBase:      discountableBase,
		RegularDiscountAmount: regular,
		SpecialDiscountAmount: special,
		FinalTotal:            finalTotal,
	}
}

func sumLines(items []entity.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func vat(base decimal.Decimal, tax entity.TaxConfig) decimal.Decimal {
	if !tax.VATEnabled || !tax.VATRatePercent.IsPositive() {
		return decimal.Zero
	}
	return base.Mul(tax.VATRatePercent).Shift(-2)
}
