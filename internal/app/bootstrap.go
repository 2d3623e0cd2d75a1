package app

import (
	"log/slog"

	"futures_bot/internal/exchange"
	"futures_bot/internal/infra"
	"futures_bot/internal/infra/binance"

	"github.com/joho/godotenv"
)

// Bootstrap orchestrates the startup sequence: env, config, logger, client.
// The exchange client is built exactly once here and passed down explicitly;
// nothing else holds a client handle.
type Bootstrap struct {
	Config   *infra.Config
	Exchange exchange.Exchange

	client *binance.Client
}

// NewBootstrap creates a new Bootstrap instance.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads configuration and constructs the exchange client.
func (b *Bootstrap) Initialize() error {
	// .env is optional; real environments set the variables directly.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig(infra.ResolveConfigPath())
	if err != nil {
		return err
	}
	b.Config = cfg

	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	client, err := binance.NewClient(cfg)
	if err != nil {
		return err
	}
	b.client = client
	b.Exchange = client

	slog.Info("bootstrap complete",
		slog.String("app", cfg.App.Name),
		slog.String("baseURL", cfg.API.Binance.BaseURL),
	)
	return nil
}

// Shutdown releases client resources (wipes credentials).
func (b *Bootstrap) Shutdown() {
	if b.client != nil {
		b.client.Close()
	}
}
