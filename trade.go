package fifo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnequalInputs reports that the four parallel columns of a raw trade
// log do not have the same length. Misaligned columns would silently
// corrupt every trade's fields, so normalization fails fast instead.
var ErrUnequalInputs = errors.New("trade log columns have unequal lengths")

// InvalidTradeError reports a trade whose quantity or price does not
// resolve to a finite number.
type InvalidTradeError struct {
	Index int    // position of the offending trade in the input
	Field string // "quantity" or "price"
	Value string // the value as supplied
}

func (e *InvalidTradeError) Error() string {
	return fmt.Sprintf("invalid trade at index %d: %s %q is not a finite number", e.Index, e.Field, e.Value)
}

// Trade is a single immutable event in a chronological trade log.
//
// Order is significant and is the caller's responsibility: trades are
// processed strictly in the order supplied, never re-sorted.
type Trade struct {
	Security string   `json:"security"`
	Action   string   `json:"action"`
	Quantity Quantity `json:"quantity"`
	Price    Price    `json:"price"`
}

// NewTrades normalizes the four parallel columns of a raw trade log into a
// sequence of Trade records, preserving input order.
//
// All four columns must have the same length (ErrUnequalInputs otherwise).
// A NaN or infinite quantity or price yields an *InvalidTradeError naming
// the offending index: not-a-number values must never reach the averaging
// arithmetic. Security and action are trimmed to their canonical form.
func NewTrades(securities, actions []string, quantities, prices []float64) ([]Trade, error) {
	n := len(securities)
	if len(actions) != n || len(quantities) != n || len(prices) != n {
		return nil, fmt.Errorf("%w: %d securities, %d actions, %d quantities, %d prices",
			ErrUnequalInputs, n, len(actions), len(quantities), len(prices))
	}

	trades := make([]Trade, 0, n)
	for i := 0; i < n; i++ {
		if !isFinite(quantities[i]) {
			return nil, &InvalidTradeError{Index: i, Field: "quantity", Value: fmt.Sprint(quantities[i])}
		}
		if !isFinite(prices[i]) {
			return nil, &InvalidTradeError{Index: i, Field: "price", Value: fmt.Sprint(prices[i])}
		}
		trades = append(trades, Trade{
			Security: strings.TrimSpace(securities[i]),
			Action:   strings.TrimSpace(actions[i]),
			Quantity: Q(quantities[i]),
			Price:    P(prices[i]),
		})
	}
	return trades, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
