package fifo

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Price is a unit cost or an average cost per share or coin.
//
// It carries no currency on its own: the trade log is single-currency by
// contract, and a display currency is only chosen at rendering time.
type Price struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

func (p Price) Equal(o Price) bool       { return p.value.Equal(o.value) }
func (p Price) LessThan(o Price) bool    { return p.value.LessThan(o.value) }
func (p Price) GreaterThan(o Price) bool { return p.value.GreaterThan(o.value) }
func (p Price) Add(o Price) Price        { return Price{value: p.value.Add(o.value)} }
func (p Price) Sub(o Price) Price        { return Price{value: p.value.Sub(o.value)} }
func (p Price) IsZero() bool             { return p.value.IsZero() }
func (p Price) IsNegative() bool         { return p.value.IsNegative() }
func (p Price) String() string           { return p.value.String() }

// Mul returns the cost of a quantity at this unit price.
func (p Price) Mul(q Quantity) Price { return Price{value: p.value.Mul(q.value)} }

// Div returns the unit price of a cost spread over a quantity.
func (p Price) Div(q Quantity) Price { return Price{value: p.value.Div(q.value)} }

// Format renders the price in the given ISO currency, using that currency's
// conventional symbol, grouping and fraction digits.
func (p Price) Format(currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	dec := p.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// MarshalJSON implements the json.Marshaler interface.
func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}
func (p *Price) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
