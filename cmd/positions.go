package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asaladino/fifo"
	"github.com/asaladino/fifo/renderer"
	"github.com/google/subcommands"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	class    string
	currency string
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display open positions with FIFO average cost" }
func (*positionsCmd) Usage() string {
	return `pfm positions [-class <equity|crypto>] [-c <currency>]

  Folds the whole trade log through the FIFO ledger engine and displays the
  remaining open position and weighted average cost of each security.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.class, "class", "equity", "Asset class of the trade log (equity, crypto)")
	f.StringVar(&c.currency, "c", "USD", "Display currency for average costs")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	class, err := fifo.ParseAssetClass(c.class)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing asset class: %v\n", err)
		return subcommands.ExitUsageError
	}

	trades, err := DecodeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trade log: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger := fifo.NewLedger(class.Rules())
	for _, t := range trades {
		ledger.Apply(t)
	}

	report := &fifo.PositionsReport{
		Class:     class,
		Currency:  c.currency,
		Positions: ledger.Positions(),
	}

	printMarkdown(renderer.PositionsMarkdown(report))

	return subcommands.ExitSuccess
}
