package exchange

import "context"

// SymbolInfo is one tradable instrument from the exchange metadata.
type SymbolInfo struct {
	Symbol string `json:"symbol"`
	Status string `json:"status"`
}

// Info is the subset of the exchange metadata the bot consumes.
type Info struct {
	Symbols []SymbolInfo `json:"symbols"`
}

// OrderParams is the wire payload for a single order submission.
// TimeInForce and Price are set only for LIMIT orders.
type OrderParams struct {
	Symbol      string
	Side        string
	Type        string
	Quantity    string
	TimeInForce string
	Price       string
}

// OrderResponse is the raw decoded exchange response. Numeric values decode
// as json.Number so IDs survive without float rounding. The shape varies by
// order type and state, so it stays an open map.
type OrderResponse map[string]any

// Exchange defines the two capabilities the pipeline needs from an exchange
// client: fetch metadata and submit one order.
type Exchange interface {
	// ExchangeInfo fetches the exchange metadata (tradable symbols).
	ExchangeInfo(ctx context.Context) (*Info, error)

	// PlaceOrder submits a single order and returns the raw response.
	PlaceOrder(ctx context.Context, params OrderParams) (OrderResponse, error)
}
