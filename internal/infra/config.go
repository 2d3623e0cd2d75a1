package infra

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TestnetBaseURL is the Binance USDⓈ-M futures testnet endpoint. The bot is
// testnet-only; mainnet would need a different URL and real-money keys.
const TestnetBaseURL = "https://testnet.binancefuture.com"

// Config holds all application settings. Loaded from an optional yaml file,
// then overridden by environment variables for secrets.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		Binance struct {
			BaseURL      string `yaml:"base_url"`
			APIKey       string `yaml:"api_key"`
			SecretKey    string `yaml:"secret_key"`
			TimeoutSec   int    `yaml:"timeout_sec"`
			RecvWindowMS int64  `yaml:"recv_window_ms"`
		} `yaml:"binance"`
	} `yaml:"api"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// DefaultConfig returns a config that works out of the box except for
// credentials, which must come from the environment or a .env file.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "futuresbot"
	cfg.App.Version = "1.0.0"
	cfg.API.Binance.BaseURL = TestnetBaseURL
	cfg.API.Binance.TimeoutSec = 15
	cfg.API.Binance.RecvWindowMS = 5000
	cfg.Logging.Level = "info"
	cfg.Logging.File = "futuresbot.log"
	return cfg
}

// LoadConfig reads the yaml config at path, falling back to defaults when the
// file does not exist. Environment variables override file values afterwards.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only; credentials still expected from env.
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.API.Binance.BaseURL, "https://") {
		return fmt.Errorf("invalid Binance base URL: %s", c.API.Binance.BaseURL)
	}
	if c.API.Binance.TimeoutSec <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.API.Binance.RecvWindowMS <= 0 {
		return fmt.Errorf("recv window must be positive")
	}
	return nil
}

// HasCredentials reports whether both API keys are set.
func (c *Config) HasCredentials() bool {
	return c.API.Binance.APIKey != "" && c.API.Binance.SecretKey != ""
}

// overrideWithEnv applies environment variables over file values. Secrets
// belong in the environment (or a .env file), not in the config file.
func overrideWithEnv(cfg *Config) {
	if key := os.Getenv("BINANCE_API_KEY"); key != "" {
		cfg.API.Binance.APIKey = key
	}
	if secret := os.Getenv("BINANCE_API_SECRET"); secret != "" {
		cfg.API.Binance.SecretKey = secret
	}
	if base := os.Getenv("BINANCE_BASE_URL"); base != "" {
		cfg.API.Binance.BaseURL = base
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
