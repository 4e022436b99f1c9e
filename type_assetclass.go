package fifo

import (
	"fmt"
	"strings"
)

// AssetClass selects the action vocabulary and decimal precision of a
// trade log.
type AssetClass int

const (
	// Equity is a stock trade log: acquisitions are Buy and DRIP, rounding
	// uses 5 decimal places.
	Equity AssetClass = iota
	// Crypto is a crypto-asset trade log: acquisitions are Buy, DRIP and
	// REWARD, rounding uses 8 decimal places to handle coin fractions.
	Crypto
)

func (c AssetClass) String() string {
	switch c {
	case Equity:
		return "equity"
	case Crypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch s {
	case "equity":
		return Equity, nil
	case "crypto":
		return Crypto, nil
	default:
		return 0, fmt.Errorf("unknown asset class: %q", s)
	}
}

// Rules returns the ledger engine configuration for this asset class.
func (c AssetClass) Rules() Rules {
	switch c {
	case Crypto:
		return Rules{
			exact:     []string{"Buy"},
			folded:    []string{"DRIP", "REWARD"},
			disposal:  "Sell",
			precision: 8,
		}
	default:
		return Rules{
			exact:     []string{"Buy"},
			folded:    []string{"DRIP"},
			disposal:  "Sell",
			precision: 5,
		}
	}
}

// Rules configures the ledger engine for one asset class: which actions
// open a lot, which action consumes lots, and the decimal precision used
// when comparing quantities.
//
// Action matching is deliberately asymmetric: actions in exact match
// case-sensitively, actions in folded match case-insensitively. Uniform
// normalization would change matching behavior for mixed-case logs.
type Rules struct {
	exact     []string // case-sensitive acquisition actions
	folded    []string // case-insensitive acquisition actions
	disposal  string   // case-sensitive disposal action
	precision int32    // decimal places for quantity comparisons
}

// Precision returns the number of decimal places quantities are rounded to
// before any comparison.
func (r Rules) Precision() int32 { return r.precision }

// Acquires reports whether the action opens a new lot.
func (r Rules) Acquires(action string) bool {
	for _, a := range r.exact {
		if action == a {
			return true
		}
	}
	for _, a := range r.folded {
		if strings.EqualFold(action, a) {
			return true
		}
	}
	return false
}

// Disposes reports whether the action consumes open lots.
func (r Rules) Disposes(action string) bool { return action == r.disposal }
