package service

import (
	"context"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/payment"
)

const intentCurrency = "usd"

// IntentCreator creates payment intents at the processor.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error)
}

// PaymentHistoryStore is the payment storage the history endpoints need.
type PaymentHistoryStore interface {
	ListByEmail(ctx context.Context, email string) ([]model.PaymentRecord, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

// PaymentService handles payment intents and history.
type PaymentService struct {
	processor IntentCreator
	payments  PaymentHistoryStore
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(processor IntentCreator, payments PaymentHistoryStore) *PaymentService {
	return &PaymentService{processor: processor, payments: payments}
}

// CreateIntent opens a card payment intent for price dollars. The fractional
// part of price is dropped before converting to cents.
func (s *PaymentService) CreateIntent(ctx context.Context, req *model.PaymentIntentRequest) (*payment.Intent, error) {
	amount := int64(req.Price) * 100
	return s.processor.CreateIntent(ctx, amount, intentCurrency)
}

// History lists a user's payments, newest first.
func (s *PaymentService) History(ctx context.Context, email string) ([]model.PaymentRecord, error) {
	return s.payments.ListByEmail(ctx, email)
}

// HistoryCount counts a user's payments.
func (s *PaymentService) HistoryCount(ctx context.Context, email string) (int64, error) {
	return s.payments.CountByEmail(ctx, email)
}
