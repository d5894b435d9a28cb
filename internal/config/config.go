// Package config loads the storefront configuration from environment
// variables.
package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/utafrali/storefront/pkg/config"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Redis cart store. An empty address selects the in-memory cart store,
	// which is the default for development.
	RedisAddr string `env:"REDIS_ADDR" envDefault:""`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Cart TTL in hours (default: 7 days)
	CartTTL int `env:"CART_TTL_HOURS" envDefault:"168"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Payment provider: "mock" or "stripe". The mock provider simulates a
	// charge with a short delay and always succeeds.
	PaymentProvider string `env:"PAYMENT_PROVIDER" envDefault:"mock"`
	StripeSecretKey string `env:"STRIPE_SECRET_KEY" envDefault:""`
	StripeBaseURL   string `env:"STRIPE_BASE_URL" envDefault:""`

	// OpenTelemetry
	OTLPEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	TraceSample  float64 `env:"OTEL_TRACE_SAMPLE_RATIO" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CartTTLDuration returns the cart TTL as a duration.
func (c *Config) CartTTLDuration() time.Duration {
	return time.Duration(c.CartTTL) * time.Hour
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.CartTTL < 1 {
		return fmt.Errorf("cart TTL must be at least 1 hour, got %d", c.CartTTL)
	}
	switch c.PaymentProvider {
	case "mock":
	case "stripe":
		if c.StripeSecretKey == "" {
			return fmt.Errorf("STRIPE_SECRET_KEY is required when PAYMENT_PROVIDER is stripe")
		}
	default:
		return fmt.Errorf("unknown payment provider: %q", c.PaymentProvider)
	}
	return nil
}
