package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"futures_bot/internal/app"
	"futures_bot/internal/domain"
	"futures_bot/internal/exchange"
	"futures_bot/internal/infra"
	"futures_bot/internal/order"
	"futures_bot/internal/validate"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type args struct {
	symbol   string
	side     string
	typ      string
	quantity string
	price    string
}

func parseArgs(argv []string, stderr io.Writer) (*args, error) {
	fs := flag.NewFlagSet("futuresbot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	a := &args{}
	fs.StringVar(&a.symbol, "symbol", "", "trading symbol (e.g. BTCUSDT)")
	fs.StringVar(&a.side, "side", "", "order side: BUY or SELL")
	fs.StringVar(&a.typ, "type", "", "order type: MARKET or LIMIT")
	fs.StringVar(&a.quantity, "quantity", "", "order quantity (e.g. 0.001)")
	fs.StringVar(&a.price, "price", "", "price for LIMIT orders (must be omitted for MARKET)")

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	for _, req := range []struct{ name, val string }{
		{"symbol", a.symbol},
		{"side", a.side},
		{"type", a.typ},
		{"quantity", a.quantity},
	} {
		if req.val == "" {
			return nil, domain.Validationf("--%s is required", req.name)
		}
	}
	return a, nil
}

// run executes the full pipeline and maps the outcome to an exit code. All
// errors surface as exactly one stderr line; a panic anywhere downstream is
// converted into the generic prefix instead of a raw stack trace.
func run(argv []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("unexpected panic", slog.Any("panic", r))
			fmt.Fprintf(stderr, "Unexpected error: %v\n", r)
			code = 1
		}
	}()

	a, err := parseArgs(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return report(stderr, err)
	}

	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(); err != nil {
		return report(stderr, err)
	}
	defer bootstrap.Shutdown()

	infra.PrintBanner(bootstrap.Config)
	slog.Info("starting futures testnet order placement")

	summary, err := execute(context.Background(), bootstrap.Exchange, a)
	if err != nil {
		return report(stderr, err)
	}

	printSummary(stdout, summary)
	slog.Info("finished successfully")
	return 0
}

// execute runs validation, the remote symbol check, submission and summary
// extraction, in that order.
func execute(ctx context.Context, ex exchange.Exchange, a *args) (domain.OrderSummary, error) {
	var none domain.OrderSummary

	symbol, err := validate.SymbolFormat(a.symbol)
	if err != nil {
		return none, err
	}
	side, err := validate.Side(a.side)
	if err != nil {
		return none, err
	}
	orderType, err := validate.OrderType(a.typ)
	if err != nil {
		return none, err
	}
	quantity, err := validate.Quantity(a.quantity)
	if err != nil {
		return none, err
	}
	price, err := validate.Price(a.price, orderType == domain.OrderTypeLimit)
	if err != nil {
		return none, err
	}

	symbol, err = validate.SymbolOnExchange(ctx, symbol, ex)
	if err != nil {
		return none, err
	}

	resp, err := order.Place(ctx, ex, domain.OrderRequest{
		Symbol:   symbol,
		Side:     side,
		Type:     orderType,
		Quantity: quantity,
		Price:    price,
	})
	if err != nil {
		return none, err
	}

	return order.ExtractSummary(resp), nil
}

// report prints the single error line with the prefix for its kind.
func report(stderr io.Writer, err error) int {
	var vErr *domain.ValidationError
	var sErr *domain.SubmissionError

	switch {
	case errors.As(err, &vErr):
		slog.Error("validation error", slog.Any("error", err))
		fmt.Fprintf(stderr, "Input error: %s\n", vErr.Msg)
	case errors.As(err, &sErr):
		slog.Error("submission error", slog.Any("error", err))
		fmt.Fprintf(stderr, "Error: %s\n", sErr.Msg)
	default:
		slog.Error("runtime error", slog.Any("error", err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

func printSummary(stdout io.Writer, s domain.OrderSummary) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "=== Order Summary ===")
	fmt.Fprintf(stdout, "Order ID    : %s\n", s.OrderID)
	fmt.Fprintf(stdout, "Status      : %s\n", s.Status)
	fmt.Fprintf(stdout, "Executed Qty: %s\n", s.ExecutedQty)
	fmt.Fprintf(stdout, "Avg Price   : %s\n", s.AvgPrice)
	fmt.Fprintln(stdout, "=====================")
	fmt.Fprintln(stdout)
}
