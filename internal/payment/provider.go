// Package payment defines the payment provider abstraction used by checkout.
package payment

import "context"

// Charge statuses returned by providers.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// ChargeInput holds the parameters for charging a payment.
type ChargeInput struct {
	Amount      float64
	Currency    string
	Method      string
	Description string
}

// ChargeResult holds the result of a charge operation.
type ChargeResult struct {
	ProviderPaymentID string
	Status            string
	FailureReason     string
}

// Provider defines the interface for payment provider integrations.
type Provider interface {
	// Name returns the provider name (e.g., "mock", "stripe").
	Name() string

	// Charge processes a payment charge through the provider.
	Charge(ctx context.Context, input *ChargeInput) (*ChargeResult, error)
}
