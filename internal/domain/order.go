package domain

import "github.com/shopspring/decimal"

// Side is the order direction.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType is the execution style of an order.
type OrderType string

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
)

// TimeInForceGTC keeps a limit order open until cancelled or fully filled.
const TimeInForceGTC = "GTC"

// OrderRequest holds fully validated order parameters for a single submission.
// Price is non-nil exactly when Type is LIMIT.
type OrderRequest struct {
	Symbol   string
	Side     Side
	Type     OrderType
	Quantity decimal.Decimal
	Price    *decimal.Decimal
}

// Validate checks the price/type invariant. Field-level checks happen in the
// validate package before an OrderRequest is ever constructed; this guards
// against a request assembled by hand.
func (r *OrderRequest) Validate() error {
	switch r.Type {
	case OrderTypeLimit:
		if r.Price == nil {
			return NewValidationError("price is required for LIMIT orders")
		}
	case OrderTypeMarket:
		if r.Price != nil {
			return NewValidationError("price must not be provided for MARKET orders")
		}
	default:
		return NewValidationError("order type must be either MARKET or LIMIT")
	}
	if !r.Quantity.IsPositive() {
		return NewValidationError("quantity must be greater than zero")
	}
	return nil
}

// OrderSummary is the normalized four-field view of an exchange order
// response. Fields missing from the response stay empty, except AvgPrice
// which defaults to "0".
type OrderSummary struct {
	OrderID     string
	Status      string
	ExecutedQty string
	AvgPrice    string
}
