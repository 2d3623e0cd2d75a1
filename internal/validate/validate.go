// Package validate holds the input-validation pipeline: pure syntactic checks
// first, then the remote symbol-listing check. Malformed input never reaches
// the network.
package validate

import (
	"context"
	"log/slog"
	"strings"

	"futures_bot/internal/domain"
	"futures_bot/internal/exchange"

	"github.com/shopspring/decimal"
)

const (
	symbolMinLen = 6
	symbolMaxLen = 20
)

// SymbolFormat normalizes and checks a symbol like BTCUSDT. Purely syntactic;
// exchange availability is checked separately by SymbolOnExchange.
func SymbolFormat(raw string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if symbol == "" {
		return "", domain.NewValidationError("symbol must be a non-empty string")
	}
	if len(symbol) < symbolMinLen || len(symbol) > symbolMaxLen {
		return "", domain.NewValidationError("symbol length looks invalid (expected something like BTCUSDT)")
	}
	if !isAlnum(symbol) {
		return "", domain.NewValidationError("symbol must be alphanumeric (e.g. BTCUSDT)")
	}
	return symbol, nil
}

// Side checks the order direction (BUY/SELL).
func Side(raw string) (domain.Side, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domain.NewValidationError("side is required (BUY or SELL)")
	}
	side := domain.Side(strings.ToUpper(strings.TrimSpace(raw)))
	if side != domain.SideBuy && side != domain.SideSell {
		return "", domain.NewValidationError("side must be either BUY or SELL")
	}
	return side, nil
}

// OrderType checks the order type (MARKET/LIMIT).
func OrderType(raw string) (domain.OrderType, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domain.NewValidationError("order type is required (MARKET or LIMIT)")
	}
	typ := domain.OrderType(strings.ToUpper(strings.TrimSpace(raw)))
	if typ != domain.OrderTypeMarket && typ != domain.OrderTypeLimit {
		return "", domain.NewValidationError("order type must be either MARKET or LIMIT")
	}
	return typ, nil
}

// Quantity parses the order quantity, which must be positive.
func Quantity(raw string) (decimal.Decimal, error) {
	q, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, domain.WrapValidation("quantity must be a number", err)
	}
	if !q.IsPositive() {
		return decimal.Zero, domain.NewValidationError("quantity must be greater than zero")
	}
	return q, nil
}

// Price parses the order price. For LIMIT orders (required) the price must be
// present and positive. For MARKET orders a supplied price is an error, and
// absence is returned as nil rather than zero.
func Price(raw string, required bool) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)

	if !required {
		if raw != "" {
			return nil, domain.NewValidationError("price must not be provided for MARKET orders")
		}
		return nil, nil
	}

	if raw == "" {
		return nil, domain.NewValidationError("price is required for LIMIT orders")
	}
	p, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.WrapValidation("price must be a number", err)
	}
	if !p.IsPositive() {
		return nil, domain.NewValidationError("price must be greater than zero")
	}
	return &p, nil
}

// SymbolOnExchange confirms the symbol is actually listed. A metadata-fetch
// failure is reported as a validation error: the order cannot proceed either
// way, and the user-facing advice is the same.
func SymbolOnExchange(ctx context.Context, symbol string, ex exchange.Exchange) (string, error) {
	slog.Debug("fetching exchange info to validate symbol", slog.String("symbol", symbol))

	info, err := ex.ExchangeInfo(ctx)
	if err != nil {
		slog.Error("failed to fetch exchange info", slog.Any("error", err))
		return "", domain.WrapValidation("unable to validate symbol with the exchange, please try again later", err)
	}

	for _, s := range info.Symbols {
		if s.Symbol == symbol {
			return symbol, nil
		}
	}
	return "", domain.Validationf("symbol '%s' is not listed on the futures testnet", symbol)
}

func isAlnum(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
