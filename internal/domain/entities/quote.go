package entities

import "time"

// PaymentMethod is the payment option chosen for a quote.
//
// Installments only apply to "cartao"; every other method is settled in a
// single payment.

type PaymentMethod string

const (
	PaymentMethodPix      PaymentMethod = "pix"
	PaymentMethodDinheiro PaymentMethod = "dinheiro"
	PaymentMethodCartao   PaymentMethod = "cartao"
	PaymentMethodBoleto   PaymentMethod = "boleto"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodDinheiro, PaymentMethodCartao, PaymentMethodBoleto:
		return true
	}
	return false
}

// PaymentTerms captures the payment configuration applied when pricing a quote.
type PaymentTerms struct {
	Method          PaymentMethod `json:"method"`
	Installments    int           `json:"installments"`
	DiscountPercent float64       `json:"discount_percent"`
}

// QuoteLine is one selected catalog item inside a quote.
//
// Name, PriceCents and Category are snapshotted from the catalog item when the
// line is added, so later catalog edits never alter a saved quote.
type QuoteLine struct {
	ItemID     string       `json:"item_id"`
	Name       string       `json:"name"`
	PriceCents int64        `json:"price_cents"`
	Category   ItemCategory `json:"category"`
	Quantity   int          `json:"quantity"`
}

func (l QuoteLine) TotalCents() int64 {
	return l.PriceCents * int64(l.Quantity)
}

// Quote is a finalized, priced selection of catalog items for a bride/event,
// persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (time-derived at finalize)
//
// A quote is immutable once saved; the only follow-up operation is deletion.
type Quote struct {
	ID               string       `json:"id"`
	BrideName        string       `json:"bride_name"`
	CPF              string       `json:"cpf"`
	Phone            string       `json:"phone"`
	EventDate        time.Time    `json:"event_date"`
	Notes            string       `json:"notes,omitempty"`
	Lines            []QuoteLine  `json:"lines"`
	Payment          PaymentTerms `json:"payment"`
	SubtotalCents    int64        `json:"subtotal_cents"`
	DiscountCents    int64        `json:"discount_cents"`
	TotalCents       int64        `json:"total_cents"`
	InstallmentCents int64        `json:"installment_cents"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
