// Package mock provides a simulated payment provider for development.
package mock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/storefront/internal/payment"
)

// DefaultDelay is how long a simulated charge takes to "process".
const DefaultDelay = 1500 * time.Millisecond

// Provider is a mock payment provider that always succeeds after a
// simulated processing delay. It is intended for development and demos
// where no real payment backend is available.
type Provider struct {
	delay time.Duration
}

// NewProvider creates a new mock payment provider with the default delay.
func NewProvider() *Provider {
	return &Provider{delay: DefaultDelay}
}

// NewProviderWithDelay creates a mock provider with a custom delay.
// Tests use a zero delay to avoid slowing the suite down.
func NewProviderWithDelay(delay time.Duration) *Provider {
	return &Provider{delay: delay}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "mock"
}

// Charge simulates a payment charge that always succeeds. The delay is
// interruptible so a cancelled request does not hold the goroutine.
func (p *Provider) Charge(ctx context.Context, _ *payment.ChargeInput) (*payment.ChargeResult, error) {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &payment.ChargeResult{
		ProviderPaymentID: "mock_pay_" + uuid.New().String(),
		Status:            payment.StatusSucceeded,
		FailureReason:     "",
	}, nil
}
