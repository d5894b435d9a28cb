// Package stripe implements a payment provider backed by the Stripe API.
//
// The provider creates and confirms a PaymentIntent per charge. It is
// wired into the application but only selected when PAYMENT_PROVIDER is
// set to "stripe"; the default checkout flow uses the mock provider.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/utafrali/storefront/internal/payment"
	"github.com/utafrali/storefront/pkg/httpclient"
)

const defaultBaseURL = "https://api.stripe.com/v1"

// Config holds Stripe provider configuration.
type Config struct {
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
}

// Provider charges payments through the Stripe PaymentIntents API.
type Provider struct {
	client    *httpclient.CircuitBreakerClient
	secretKey string
	baseURL   string
	logger    *slog.Logger
}

// NewProvider creates a Stripe payment provider. Outbound calls go
// through a retrying HTTP client wrapped in a circuit breaker so a
// Stripe outage degrades checkout instead of hanging it.
func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	clientCfg := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		clientCfg.Timeout = cfg.Timeout
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := httpclient.NewCircuitBreakerClient(
		httpclient.New(clientCfg),
		httpclient.DefaultCircuitBreakerConfig("stripe"),
		logger,
	)

	return &Provider{
		client:    client,
		secretKey: cfg.SecretKey,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		logger:    logger,
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "stripe"
}

// paymentIntent is the subset of the Stripe PaymentIntent object we read.
type paymentIntent struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	LastPaymentError *struct {
		Message string `json:"message"`
	} `json:"last_payment_error"`
}

type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Charge creates and confirms a Stripe PaymentIntent for the given amount.
// Amounts are converted to the smallest currency unit as Stripe requires.
func (p *Provider) Charge(ctx context.Context, input *payment.ChargeInput) (*payment.ChargeResult, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(toMinorUnits(input.Amount), 10))
	form.Set("currency", strings.ToLower(input.Currency))
	form.Set("confirm", "true")
	form.Set("automatic_payment_methods[enabled]", "true")
	form.Set("automatic_payment_methods[allow_redirects]", "never")
	if input.Description != "" {
		form.Set("description", input.Description)
	}

	endpoint := p.baseURL + "/payment_intents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create payment intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}
	defer resp.Body.Close()

	// Card declines come back as 402 with a structured error body; treat
	// them as a failed charge rather than a transport error.
	if resp.StatusCode >= 400 {
		var stripeErr stripeError
		if err := json.NewDecoder(resp.Body).Decode(&stripeErr); err != nil {
			return nil, fmt.Errorf("stripe error response (status %d): %w", resp.StatusCode, err)
		}
		if resp.StatusCode == http.StatusPaymentRequired || stripeErr.Error.Type == "card_error" {
			return &payment.ChargeResult{
				Status:        payment.StatusFailed,
				FailureReason: stripeErr.Error.Message,
			}, nil
		}
		return nil, fmt.Errorf("stripe payment intent failed (status %d): %s", resp.StatusCode, stripeErr.Error.Message)
	}

	var intent paymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("decode payment intent: %w", err)
	}

	result := &payment.ChargeResult{ProviderPaymentID: intent.ID}
	if intent.Status == "succeeded" {
		result.Status = payment.StatusSucceeded
	} else {
		result.Status = payment.StatusFailed
		if intent.LastPaymentError != nil {
			result.FailureReason = intent.LastPaymentError.Message
		} else {
			result.FailureReason = "payment intent status: " + intent.Status
		}
	}

	p.logger.InfoContext(ctx, "stripe charge processed",
		slog.String("payment_intent_id", intent.ID),
		slog.String("status", result.Status),
	)

	return result, nil
}

// toMinorUnits converts a decimal amount to the smallest currency unit.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
