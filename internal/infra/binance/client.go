// Package binance implements a minimal signed REST client for the Binance
// USDⓈ-M futures testnet: exchange metadata and single-order placement.
package binance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"futures_bot/internal/exchange"
	"futures_bot/internal/infra"

	"golang.org/x/time/rate"
)

// Client handles Binance futures REST API communication. One instance is
// constructed by the entry point and reused for both calls of an invocation.
type Client struct {
	baseURL    string
	signer     *Signer
	recvWindow int64
	httpClient *http.Client
	limiter    *rate.Limiter

	// metadata retry knobs, overridable in tests
	maxAttempts int
	backoff     func(retry int) time.Duration
}

// NewClient creates a Binance futures REST client from config. Credentials
// are required up front; without them neither capability can be exercised.
func NewClient(cfg *infra.Config) (*Client, error) {
	if !cfg.HasCredentials() {
		return nil, fmt.Errorf("missing API credentials: set BINANCE_API_KEY and BINANCE_API_SECRET in the environment or a .env file")
	}

	b := cfg.API.Binance
	slog.Info("initializing Binance futures client", slog.String("baseURL", b.BaseURL))

	return &Client{
		baseURL:    b.BaseURL,
		signer:     NewSigner(b.APIKey, b.SecretKey),
		recvWindow: b.RecvWindowMS,
		httpClient: &http.Client{
			Timeout: time.Duration(b.TimeoutSec) * time.Second,
		},
		limiter:     rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		maxAttempts: metadataMaxAttempts,
		backoff:     infra.CalculateBackoff,
	}, nil
}

// ExchangeInfo fetches the exchange metadata from the public endpoint. This
// read-only GET retries transient failures with exponential backoff; that is
// the client's own policy, callers see a single outcome.
func (c *Client) ExchangeInfo(ctx context.Context) (*exchange.Info, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt - 1)
			slog.Warn("retrying exchange info fetch",
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay),
				slog.Any("error", lastErr),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		info, err := c.fetchExchangeInfo(ctx)
		if err == nil {
			return info, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("exchange info fetch failed after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) fetchExchangeInfo(ctx context.Context) (*exchange.Info, error) {
	body, err := c.do(ctx, http.MethodGet, exchangeInfoPath, nil, false)
	if err != nil {
		return nil, err
	}

	var info exchange.Info
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse exchange info: %w", err)
	}
	return &info, nil
}

// PlaceOrder submits a single order to the signed order endpoint. Exactly one
// attempt: the caller cannot know whether a timed-out POST reached the
// matching engine, so retrying risks a duplicate order.
func (c *Client) PlaceOrder(ctx context.Context, params exchange.OrderParams) (exchange.OrderResponse, error) {
	values := url.Values{}
	values.Set("symbol", params.Symbol)
	values.Set("side", params.Side)
	values.Set("type", params.Type)
	values.Set("quantity", params.Quantity)
	if params.TimeInForce != "" {
		values.Set("timeInForce", params.TimeInForce)
	}
	if params.Price != "" {
		values.Set("price", params.Price)
	}

	body, err := c.do(ctx, http.MethodPost, orderPath, values, true)
	if err != nil {
		return nil, err
	}

	resp := exchange.OrderResponse{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}
	return resp, nil
}

// do performs one HTTP request. Signed requests get timestamp, recvWindow and
// an HMAC signature appended to the query, plus the API key header.
func (c *Client) do(ctx context.Context, method, path string, values url.Values, signed bool) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	if values == nil {
		values = url.Values{}
	}
	if signed {
		values.Set("timestamp", strconv.FormatInt(nowMillis(), 10))
		values.Set("recvWindow", strconv.FormatInt(c.recvWindow, 10))
		values.Set("signature", c.signer.Sign(values.Encode()))
	}

	reqURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if signed {
		req.Header.Set("X-MBX-APIKEY", c.signer.APIKey())
	}

	slog.Debug("binance request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{HTTP: resp.StatusCode}
		if json.Unmarshal(body, apiErr) == nil && apiErr.Msg != "" {
			return nil, apiErr
		}
		return nil, fmt.Errorf("unexpected HTTP %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// Close wipes the credentials.
func (c *Client) Close() {
	c.signer.Wipe()
}
