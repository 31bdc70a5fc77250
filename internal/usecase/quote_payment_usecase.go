package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase/interfaces"
)

var (
	ErrQuotePaymentNotFound   = errors.New("quote payment not found")
	ErrInvalidPaymentQuoteID  = errors.New("invalid quote_id")
	ErrInvalidProviderPayload = errors.New("invalid payment provider payload")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
)

// IQuotePaymentUseCase encapsulates checkout of a finalized quote.
//
// The provider payload is forwarded to the configured gateway after being
// enriched with the quote linkage; the transaction amount always comes from
// the persisted quote, never from the caller.

type IQuotePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo    interfaces.IQuotePaymentRepository
	quotes  interfaces.IQuoteRepository
	gateway interfaces.IPaymentGateway
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(repo interfaces.IQuotePaymentRepository, quotes interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{repo: repo, quotes: quotes, gateway: gateway}
}

func (u *QuotePaymentUseCase) CreateAndApprove(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error) {
	log.Printf("[payment][usecase] create-and-approve start quote_id=%q payload_len=%d", quoteID, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentQuoteID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload quote_id=%s", quoteID)
			return entities.QuotePayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.QuotePayment{}, ErrGatewayNotConfigured
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading quote quote_id=%s err=%v", quoteID, err)
		return entities.QuotePayment{}, err
	}
	if q.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}

	amount := float64(q.TotalCents) / 100

	// Link the payment to the quote and pin the amount to the persisted total.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id quote_id=%s", quoteID)
			return entities.QuotePayment{}, ErrInvalidProviderPayload
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = quoteID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Orçamento %s - %s", quoteID, q.BrideName)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	var (
		providerPaymentID string
		providerResp      json.RawMessage
	)

	if mockMode {
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		_ = json.Unmarshal(providerPayload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		mockResp["external_reference"] = quoteID
		mockResp["transaction_amount"] = amount
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.QuotePayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, providerPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed quote_id=%s err=%v", quoteID, err)
			return entities.QuotePayment{}, err
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	p := entities.QuotePayment{
		ID:                 providerPaymentID,
		QuoteID:            quoteID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed quote_id=%s payment_id=%s err=%v", quoteID, p.ID, err)
		return entities.QuotePayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success quote_id=%s payment_id=%s", quoteID, created.ID)
	return created, nil
}

func (u *QuotePaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrQuotePaymentNotFound
	}
	return p, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
