package fifo

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file imports trades from arbitrary broker JSON exports.
//
// Brokers all export trades as some JSON shape with the same four columns
// buried in it; a TradeMapping locates them with jsonpath expressions
// instead of hardcoding one broker's schema.

// TradeMapping holds the jsonpath expressions locating the four parallel
// columns of a trade log inside a broker JSON export, e.g.
//
//	TradeMapping{
//		Securities: "$.trades[*].symbol",
//		Actions:    "$.trades[*].side",
//		Quantities: "$.trades[*].qty",
//		Prices:     "$.trades[*].price",
//	}
type TradeMapping struct {
	Securities string
	Actions    string
	Quantities string
	Prices     string
}

// ImportTrades extracts trades from a broker JSON export using the given
// mapping, in document order.
//
// The four extracted columns must have the same length (ErrUnequalInputs
// otherwise), and every quantity and price must resolve to a finite number
// (*InvalidTradeError otherwise).
func ImportTrades(r io.Reader, mapping TradeMapping) ([]Trade, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse broker export: %w", err)
	}

	securities, err := stringColumn(jobj, mapping.Securities)
	if err != nil {
		return nil, fmt.Errorf("securities column: %w", err)
	}
	actions, err := stringColumn(jobj, mapping.Actions)
	if err != nil {
		return nil, fmt.Errorf("actions column: %w", err)
	}
	quantities, err := numberColumn(jobj, mapping.Quantities, "quantity")
	if err != nil {
		return nil, err
	}
	prices, err := numberColumn(jobj, mapping.Prices, "price")
	if err != nil {
		return nil, err
	}

	return NewTrades(securities, actions, quantities, prices)
}

// column evaluates a jsonpath expression expected to select a list of
// scalar values.
func column(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list or a single
	// answer: promote a scalar to a one-element column.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}
	return jlist, nil
}

func stringColumn(jobj any, path string) ([]string, error) {
	jlist, err := column(jobj, path)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(jlist))
	for _, jval := range jlist {
		values = append(values, strings.TrimSpace(fmt.Sprint(jval)))
	}
	return values, nil
}

func numberColumn(jobj any, path, field string) ([]float64, error) {
	jlist, err := column(jobj, path)
	if err != nil {
		return nil, fmt.Errorf("%s column: %w", field, err)
	}
	values := make([]float64, 0, len(jlist))
	for i, jval := range jlist {
		switch v := jval.(type) {
		case float64:
			values = append(values, v)
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, &InvalidTradeError{Index: i, Field: field, Value: v}
			}
			values = append(values, f)
		default:
			return nil, &InvalidTradeError{Index: i, Field: field, Value: fmt.Sprint(jval)}
		}
	}
	return values, nil
}
