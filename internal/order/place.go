// Package order builds the submission payload, invokes the exchange, and
// normalizes the response into a fixed four-field summary.
package order

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"futures_bot/internal/domain"
	"futures_bot/internal/exchange"
)

// priceDecimals is the fixed fractional precision the exchange expects for
// submitted prices. Formatting uses round half away from zero.
const priceDecimals = 8

// Place submits a single order built from a validated request. Any failure
// from the exchange call, rejection or transport, comes back as a single
// SubmissionError wrapping the cause. The raw response is returned unmodified
// for ExtractSummary.
func Place(ctx context.Context, ex exchange.Exchange, req domain.OrderRequest) (exchange.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params := exchange.OrderParams{
		Symbol:   req.Symbol,
		Side:     string(req.Side),
		Type:     string(req.Type),
		Quantity: req.Quantity.String(),
	}
	if req.Type == domain.OrderTypeLimit {
		params.TimeInForce = domain.TimeInForceGTC
		params.Price = req.Price.StringFixed(priceDecimals)
	}

	slog.Info("sending new order request",
		slog.String("symbol", params.Symbol),
		slog.String("side", params.Side),
		slog.String("type", params.Type),
	)
	slog.Debug("order request params", slog.Any("params", params))

	resp, err := ex.PlaceOrder(ctx, params)
	if err != nil {
		slog.Error("order submission failed", slog.Any("error", err))
		return nil, domain.Submissionf(err, "order submission failed")
	}

	slog.Info("order successfully placed")
	slog.Debug("order response", slog.Any("response", resp))
	return resp, nil
}

// ExtractSummary reads the four summary fields by key. AvgPrice resolves as
// avgPrice, then price, then the literal "0" — unfilled and newly placed
// orders often carry no average fill price. Missing keys stay empty; the
// function never fails.
func ExtractSummary(resp exchange.OrderResponse) domain.OrderSummary {
	summary := domain.OrderSummary{
		OrderID:     stringField(resp, "orderId"),
		Status:      stringField(resp, "status"),
		ExecutedQty: stringField(resp, "executedQty"),
		AvgPrice:    stringField(resp, "avgPrice"),
	}

	if summary.AvgPrice == "" {
		summary.AvgPrice = stringField(resp, "price")
	}
	if summary.AvgPrice == "" {
		summary.AvgPrice = "0"
	}

	slog.Debug("extracted order summary", slog.Any("summary", summary))
	return summary
}

// stringField renders one response value as a string. Absent keys and nil
// values come back empty.
func stringField(resp exchange.OrderResponse, key string) string {
	v, ok := resp[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
