package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"near-crowdfund/internal/config/configs"
)

// Config aggregates all configuration sections for the gateway. Fields are
// populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// Timezone is the IANA location in which human-entered deadlines are
	// interpreted. The browser sends a bare local date/time with no
	// offset, so the gateway has to pick one.
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Ledger configures access to the NEAR node and the signer bridge.
	Ledger configs.Ledger `envPrefix:"LEDGER_"`

	// Pinner configures the Pinata pinning client.
	Pinner configs.Pinner `envPrefix:"PINNER_"`

	// Gate configures the create-campaign access gate.
	Gate configs.Gate `envPrefix:"GATE_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("bad timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
