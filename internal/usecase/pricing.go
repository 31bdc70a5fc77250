package usecase

import (
	"math"

	"atelier_noiva/internal/domain/entities"
)

// PricingTotals is the full pricing output for a set of quote lines.
//
// All values are integer centavos. InstallmentCents is zero unless the payment
// method is cartão with a positive installment count.
type PricingTotals struct {
	SubtotalCents    int64 `json:"subtotal_cents"`
	DiscountCents    int64 `json:"discount_cents"`
	TotalCents       int64 `json:"total_cents"`
	InstallmentCents int64 `json:"installment_cents"`
}

// ComputeTotals derives subtotal, discount, total and per-installment value
// from the lines and payment terms. It is a pure function: recomputing with
// the same inputs yields the same totals.
//
// Discount percentages outside [0, 100] are clamped. Accumulation stays in
// integer cents; the only rounding happens when applying the percentage and
// when splitting the total into installments (half-up, to the cent).
func ComputeTotals(lines []entities.QuoteLine, terms entities.PaymentTerms) PricingTotals {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.TotalCents()
	}

	discount := discountCents(subtotal, terms.DiscountPercent)
	total := subtotal - discount

	var installment int64
	if terms.Method == entities.PaymentMethodCartao && terms.Installments > 0 {
		installment = int64(math.Round(float64(total) / float64(terms.Installments)))
	}

	return PricingTotals{
		SubtotalCents:    subtotal,
		DiscountCents:    discount,
		TotalCents:       total,
		InstallmentCents: installment,
	}
}

func discountCents(subtotal int64, percent float64) int64 {
	if percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return subtotal
	}
	return int64(math.Round(float64(subtotal) * percent / 100))
}
