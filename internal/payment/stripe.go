package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// ErrProvider wraps every failure reported by or while reaching the processor.
var ErrProvider = errors.New("payment provider error")

// Intent is the subset of a Stripe PaymentIntent the client needs.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// StripeClient creates payment intents through the Stripe REST API.
type StripeClient struct {
	http *resty.Client
	log  zerolog.Logger
}

// NewStripeClient creates a client for baseURL authenticated with secretKey.
func NewStripeClient(baseURL, secretKey string, log zerolog.Logger) *StripeClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(secretKey).
		SetTimeout(15*time.Second).
		SetHeader("Accept", "application/json")

	return &StripeClient{
		http: client,
		log:  log.With().Str("component", "stripe_client").Logger(),
	}
}

// CreateIntent creates a card payment intent for amount in the smallest currency unit.
func (c *StripeClient) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	var intent Intent
	var apiErr stripeError

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amount, 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		SetResult(&intent).
		SetError(&apiErr).
		Post("/v1/payment_intents")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	if resp.IsError() {
		c.log.Warn().
			Int("status", resp.StatusCode()).
			Str("type", apiErr.Error.Type).
			Str("code", apiErr.Error.Code).
			Msg("payment intent rejected")
		return nil, fmt.Errorf("%w: status %d: %s", ErrProvider, resp.StatusCode(), apiErr.Error.Message)
	}

	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("%w: empty client secret", ErrProvider)
	}

	return &intent, nil
}
