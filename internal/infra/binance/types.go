package binance

import (
	"fmt"
	"time"
)

const (
	exchangeInfoPath = "/fapi/v1/exchangeInfo"
	orderPath        = "/fapi/v1/order"

	// metadataMaxAttempts bounds the client-internal retry for the read-only
	// metadata fetch. Order submission is never retried: a timed-out POST may
	// still have placed the order.
	metadataMaxAttempts = 3
)

// Binance futures REST limits are weight-based; 2 req/s with a small burst
// stays far under them for this tool's two calls.
const (
	requestsPerSecond = 2
	requestBurst      = 4
)

// APIError is an error body returned by the Binance API
// ({"code":-1121,"msg":"Invalid symbol."}).
type APIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	HTTP int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance API error (HTTP %d, code %d): %s", e.HTTP, e.Code, e.Msg)
}

// nowMillis is the request timestamp Binance expects.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}
