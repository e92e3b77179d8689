package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for investbridge. Everything here is
// an operator concern; the API token and sandbox flag arrive in the request
// body, never in configuration.
type Config struct {
	Invest  Invest  `yaml:"invest"`
	Sandbox Sandbox `yaml:"sandbox"`
	Logging Logging `yaml:"logging"`
}

// Invest holds endpoints and client identification for the Invest API.
type Invest struct {
	Endpoint        string `yaml:"endpoint"`
	SandboxEndpoint string `yaml:"sandbox_endpoint"`
	AppName         string `yaml:"app_name"`
}

// Sandbox controls demo-account creation.
type Sandbox struct {
	PayInUnits    int64  `yaml:"pay_in_units"`
	PayInCurrency string `yaml:"pay_in_currency"`
}

// Logging configures the application logger.
type Logging struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Invest: Invest{
			Endpoint:        "invest-public-api.tinkoff.ru:443",
			SandboxEndpoint: "sandbox-invest-public-api.tinkoff.ru:443",
			AppName:         "investbridge",
		},
		Sandbox: Sandbox{
			PayInUnits:    1000000,
			PayInCurrency: "rub",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load reads the YAML configuration file at the given path, parses it over
// the defaults, and then applies environment variable overrides. A missing
// file is not an error: the program must run with defaults when invoked
// without any deployment configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("INVEST_ENDPOINT"); v != "" {
		cfg.Invest.Endpoint = v
	}
	if v := os.Getenv("INVEST_SANDBOX_ENDPOINT"); v != "" {
		cfg.Invest.SandboxEndpoint = v
	}
	if v := os.Getenv("INVEST_APP_NAME"); v != "" {
		cfg.Invest.AppName = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
