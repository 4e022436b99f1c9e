// Package cmd implements the CLI application to manage a FIFO trade log.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/asaladino/fifo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&txCmd{action: "Buy"}, "trades")
	c.Register(&txCmd{action: "Sell"}, "trades")
	c.Register(&txCmd{action: "DRIP"}, "trades")
	c.Register(&txCmd{action: "REWARD"}, "trades")
	c.Register(&importCmd{}, "trades")

	c.Register(&positionsCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "trades.jsonl", "Path to the trade log file (JSONL format)")

// DecodeLog reads the whole trade log from the app default trade log file.
func DecodeLog() ([]fifo.Trade, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, trade log does not exist, starting from an empty one instead")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open trade log %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	return fifo.DecodeTrades(f)
}

// AppendTrades appends trades to the app default trade log file.
func AppendTrades(trades ...fifo.Trade) subcommands.ExitStatus {
	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trade log %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := fifo.EncodeTrades(f, trades); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to trade log %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %d trade(s) to %s\n", len(trades), filename)
	return subcommands.ExitSuccess
}
