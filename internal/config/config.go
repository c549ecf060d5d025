// Package config loads process configuration from ZAPLAND_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/zapland/internal/pkg/types"
	"github.com/gabapcia/zapland/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. ZAPLAND_ENCLAVE_URL.
const Prefix = "ZAPLAND"

// Config holds every tunable of the zapland process.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"zapland" validate:"required"`

	EnclaveURL   string `envconfig:"ENCLAVE_URL" validate:"required,url"`
	NWCBridgeURL string `envconfig:"NWC_BRIDGE_URL" validate:"required,url"`

	BalanceInterval time.Duration   `envconfig:"BALANCE_INTERVAL" default:"5s" validate:"gt=0"`
	PaymentInterval time.Duration   `envconfig:"PAYMENT_INTERVAL" default:"5s" validate:"gt=0"`
	TopUpAmount     types.Millisats `envconfig:"TOPUP_AMOUNT_MSAT" default:"10000" validate:"gt=0"`

	HTTPTimeout      time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
	HTTPRetryMax     int           `envconfig:"HTTP_RETRY_MAX" default:"2" validate:"gte=0"`
	CreationAttempts uint          `envconfig:"CREATION_ATTEMPTS" default:"1" validate:"gte=1"`

	Redis Redis `envconfig:"REDIS"`

	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`
}

// Redis configures the optional settlement recorder. An empty Addr disables it.
type Redis struct {
	Addr     string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

// Enabled reports whether a Redis address was configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}
