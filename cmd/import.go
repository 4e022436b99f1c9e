package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asaladino/fifo"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file    string
	mapping fifo.TradeMapping
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import trades from a broker JSON export" }
func (*importCmd) Usage() string {
	return `pfm import -file <export.json> -securities <jsonpath> -actions <jsonpath> -quantities <jsonpath> -prices <jsonpath>

  Extracts trades from a broker JSON export and appends them to the trade
  log. The four jsonpath expressions locate the parallel columns of the
  trade log inside the export, e.g. '$.trades[*].symbol'.

Usage Examples:
$ pfm import -file export.json \
    -securities '$.trades[*].symbol' -actions '$.trades[*].side' \
    -quantities '$.trades[*].qty' -prices '$.trades[*].price'

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Broker JSON export file to import")
	f.StringVar(&c.mapping.Securities, "securities", "", "jsonpath of the security column")
	f.StringVar(&c.mapping.Actions, "actions", "", "jsonpath of the action column")
	f.StringVar(&c.mapping.Quantities, "quantities", "", "jsonpath of the quantity column")
	f.StringVar(&c.mapping.Prices, "prices", "", "jsonpath of the price column")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <export.json> is required")
		return subcommands.ExitUsageError
	}

	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	trades, err := fifo.ImportTrades(r, c.mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing trades: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(trades) == 0 {
		fmt.Fprintln(os.Stderr, "No trades found in export")
		return subcommands.ExitFailure
	}

	return AppendTrades(trades...)
}
