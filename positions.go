package fifo

// Position is the open position of one security: the sum of its remaining
// lot quantities and their quantity-weighted average unit cost.
type Position struct {
	Security    string
	Quantity    Quantity
	AverageCost Price
}

// PositionsReport is the full open-position view of a trade log.
type PositionsReport struct {
	Class     AssetClass
	Currency  string // display currency for costs
	Positions []Position
}

// Positions projects the ledger's open lots into one row per security, in
// first-seen order. Securities fully liquidated produce no row.
//
// The projection is recomputed fresh from the open lots on every call, so
// calling it twice on the same ledger yields identical output.
func (l *Ledger) Positions() []Position {
	positions := make([]Position, 0, len(l.order))
	for _, security := range l.order {
		queue := l.open[security]
		total := queue.totalQuantity()
		if !total.IsPositive() {
			continue
		}
		positions = append(positions, Position{
			Security:    security,
			Quantity:    total,
			AverageCost: queue.averageCost(),
		})
	}
	return positions
}

// Positions computes the open positions of a chronological trade log given
// as four parallel columns. It is the one-call pipeline: normalize, fold
// into a fresh ledger, aggregate.
func Positions(class AssetClass, securities, actions []string, quantities, prices []float64) ([]Position, error) {
	trades, err := NewTrades(securities, actions, quantities, prices)
	if err != nil {
		return nil, err
	}
	ledger := NewLedger(class.Rules())
	for _, t := range trades {
		ledger.Apply(t)
	}
	return ledger.Positions(), nil
}
