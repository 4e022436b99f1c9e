package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/asaladino/fifo"
	"github.com/google/subcommands"
)

// txCmd appends one trade to the trade log. The same command type serves
// buy, sell, drip and reward; only the recorded action differs.
type txCmd struct {
	action   string
	security string
	quantity float64
	price    float64
}

func (c *txCmd) Name() string { return strings.ToLower(c.action) }
func (c *txCmd) Synopsis() string {
	return fmt.Sprintf("record a %s trade in the trade log", c.action)
}
func (c *txCmd) Usage() string {
	return fmt.Sprintf(`pfm %s -s <security> -q <quantity> -p <price>

  Appends a %s trade to the trade log. The log is chronological: trades are
  recorded in the order they are entered and are never re-sorted.

`, c.Name(), c.action)
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.security, "s", "", "Security ticker or symbol")
	f.Float64Var(&c.quantity, "q", 0, "Quantity of shares or coins")
	f.Float64Var(&c.price, "p", 0, "Price per unit")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" {
		fmt.Fprintln(os.Stderr, "Error: -s <security> is required")
		return subcommands.ExitUsageError
	}
	if c.quantity <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -q <quantity> must be positive")
		return subcommands.ExitUsageError
	}

	trades, err := fifo.NewTrades(
		[]string{c.security},
		[]string{c.action},
		[]float64{c.quantity},
		[]float64{c.price},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return AppendTrades(trades...)
}
