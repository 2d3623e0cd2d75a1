package order

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"futures_bot/internal/domain"
	"futures_bot/internal/exchange"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExchange records the submitted params and returns canned results.
type fakeExchange struct {
	got      *exchange.OrderParams
	resp     exchange.OrderResponse
	placeErr error
}

func (f *fakeExchange) ExchangeInfo(ctx context.Context) (*exchange.Info, error) {
	return &exchange.Info{}, nil
}

func (f *fakeExchange) PlaceOrder(ctx context.Context, params exchange.OrderParams) (exchange.OrderResponse, error) {
	f.got = &params
	return f.resp, f.placeErr
}

func marketRequest(t *testing.T) domain.OrderRequest {
	t.Helper()
	qty, err := decimal.NewFromString("0.001")
	require.NoError(t, err)
	return domain.OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     domain.SideBuy,
		Type:     domain.OrderTypeMarket,
		Quantity: qty,
	}
}

func TestPlace_MarketOmitsPriceAndTimeInForce(t *testing.T) {
	fake := &fakeExchange{resp: exchange.OrderResponse{"orderId": json.Number("1")}}

	_, err := Place(context.Background(), fake, marketRequest(t))
	require.NoError(t, err)
	require.NotNil(t, fake.got)

	assert.Equal(t, "BTCUSDT", fake.got.Symbol)
	assert.Equal(t, "BUY", fake.got.Side)
	assert.Equal(t, "MARKET", fake.got.Type)
	assert.Equal(t, "0.001", fake.got.Quantity)
	assert.Empty(t, fake.got.Price, "MARKET order must not carry a price")
	assert.Empty(t, fake.got.TimeInForce, "MARKET order must not carry a time in force")
}

func TestPlace_LimitFormatsPriceWithEightDecimals(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"100.123456789", "100.12345679"}, // round half away from zero
		{"100", "100.00000000"},
		{"0.1", "0.10000000"},
		{"42.000000005", "42.00000001"},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			p, err := decimal.NewFromString(tt.price)
			require.NoError(t, err)

			req := marketRequest(t)
			req.Type = domain.OrderTypeLimit
			req.Price = &p

			fake := &fakeExchange{resp: exchange.OrderResponse{}}
			_, err = Place(context.Background(), fake, req)
			require.NoError(t, err)

			assert.Equal(t, tt.want, fake.got.Price)
			assert.Equal(t, domain.TimeInForceGTC, fake.got.TimeInForce)
		})
	}
}

func TestPlace_RejectsInvariantViolations(t *testing.T) {
	p := decimal.RequireFromString("10")

	t.Run("limit without price", func(t *testing.T) {
		req := marketRequest(t)
		req.Type = domain.OrderTypeLimit
		_, err := Place(context.Background(), &fakeExchange{}, req)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("market with price", func(t *testing.T) {
		req := marketRequest(t)
		req.Price = &p
		_, err := Place(context.Background(), &fakeExchange{}, req)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
	})
}

func TestPlace_WrapsAnyFailureAsSubmissionError(t *testing.T) {
	cause := errors.New("order would immediately trigger")
	fake := &fakeExchange{placeErr: cause}

	_, err := Place(context.Background(), fake, marketRequest(t))
	require.Error(t, err)

	var sErr *domain.SubmissionError
	require.ErrorAs(t, err, &sErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, sErr.Msg, "order submission failed")
}

func TestExtractSummary(t *testing.T) {
	tests := []struct {
		name string
		resp exchange.OrderResponse
		want domain.OrderSummary
	}{
		{
			name: "filled order with avg price",
			resp: exchange.OrderResponse{
				"orderId":     json.Number("4055301"),
				"status":      "FILLED",
				"executedQty": "0.001",
				"avgPrice":    "64210.10",
			},
			want: domain.OrderSummary{OrderID: "4055301", Status: "FILLED", ExecutedQty: "0.001", AvgPrice: "64210.10"},
		},
		{
			name: "empty avg price falls back to price",
			resp: exchange.OrderResponse{
				"orderId":     json.Number("1"),
				"status":      "NEW",
				"executedQty": "0",
				"avgPrice":    "",
				"price":       "100.50",
			},
			want: domain.OrderSummary{OrderID: "1", Status: "NEW", ExecutedQty: "0", AvgPrice: "100.50"},
		},
		{
			name: "no price at all defaults to zero",
			resp: exchange.OrderResponse{
				"orderId": json.Number("2"),
				"status":  "NEW",
			},
			want: domain.OrderSummary{OrderID: "2", Status: "NEW", AvgPrice: "0"},
		},
		{
			name: "missing all keys never fails",
			resp: exchange.OrderResponse{},
			want: domain.OrderSummary{AvgPrice: "0"},
		},
		{
			name: "nil values treated as absent",
			resp: exchange.OrderResponse{"orderId": nil, "avgPrice": nil, "price": nil},
			want: domain.OrderSummary{AvgPrice: "0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSummary(tt.resp))
		})
	}
}
