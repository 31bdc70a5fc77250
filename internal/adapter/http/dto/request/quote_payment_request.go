package request

import "encoding/json"

// QuotePaymentCreateRequest is the payload for the quote checkout route.
//
// `provider_payload` is stored as-is (raw JSON) to support varying Mercado
// Pago schemas.

type QuotePaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
