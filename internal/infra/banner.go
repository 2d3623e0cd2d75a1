package infra

import (
	"fmt"
	"os"
)

// ANSI Color Codes
const (
	ColorReset  = "\033[0m"
	ColorYellow = "\033[33m"
)

// PrintBanner displays the startup banner. It goes to stderr so stdout stays
// reserved for the order summary. The bot only talks to the testnet, and the
// banner says so in yellow.
func PrintBanner(cfg *Config) {
	w := os.Stderr
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s###########################################################%s\n", ColorYellow, ColorReset)
	fmt.Fprintf(w, "%s#   %-53s #%s\n", ColorYellow, cfg.App.Name+" "+cfg.App.Version, ColorReset)
	fmt.Fprintf(w, "%s#   MODE: TESTNET (PLAY MONEY)                            #%s\n", ColorYellow, ColorReset)
	fmt.Fprintf(w, "%s###########################################################%s\n", ColorYellow, ColorReset)
	fmt.Fprintln(w)
}
