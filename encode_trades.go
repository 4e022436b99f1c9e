package fifo

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file handles the trade log persistence format.
// It should remain human readable, single file, and trivial to append to.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeTrades decodes a trade log from a stream of JSONL data, one trade
// per line, preserving line order (the log is chronological by contract).
//
// Each line is a JSON object with properties 'security', 'action',
// 'quantity' and 'price'. Blank lines are skipped. A line whose quantity or
// price is not a number fails decoding: bad values must be fixed in the
// log, not averaged into reports.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	var trades []Trade
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue // Skip empty lines
		}

		var t Trade
		if err := json.Unmarshal(lineBytes, &t); err != nil {
			return nil, fmt.Errorf("cannot parse trade log line %d: %q: %w", line, string(lineBytes), err)
		}
		trades = append(trades, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read trade log: %w", err)
	}
	return trades, nil
}

// EncodeTrade appends a single trade to 'w' in the trade log format: one
// JSON object per line.
func EncodeTrade(w io.Writer, t Trade) error {
	b, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("cannot encode trade: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
		return fmt.Errorf("cannot write trade: %w", err)
	}
	return nil
}

// EncodeTrades writes a whole trade log to 'w', one trade per line.
func EncodeTrades(w io.Writer, trades []Trade) error {
	for _, t := range trades {
		if err := EncodeTrade(w, t); err != nil {
			return err
		}
	}
	return nil
}
