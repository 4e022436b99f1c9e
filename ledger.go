package fifo

import "slices"

// Ledger maps each security to its queue of open lots, in first-seen
// acquisition order.
//
// Invariant: a security is present if and only if it has at least one open
// lot. A queue emptied by a disposal is removed immediately, together with
// its place in the iteration order, so a later re-acquisition re-enters at
// the end.
//
// A Ledger's lifetime is scoped to folding one trade log: it shares no
// state across runs and is not safe for concurrent use.
type Ledger struct {
	rules Rules
	order []string        // securities in first-acquisition order
	open  map[string]lots // open lots by security
}

// NewLedger creates an empty ledger governed by the given rules.
func NewLedger(rules Rules) *Ledger {
	return &Ledger{
		rules: rules,
		open:  make(map[string]lots),
	}
}

// Apply folds one trade into the ledger.
//
// An acquisition appends a new lot to the tail of the security's queue. A
// disposal consumes lots from the head, oldest first, discarding any excess
// silently. Any other action is ignored: unknown log entries (transfers,
// notes) must not abort processing.
func (l *Ledger) Apply(t Trade) {
	switch {
	case l.rules.Acquires(t.Action):
		queue, ok := l.open[t.Security]
		if !ok {
			l.order = append(l.order, t.Security)
		}
		l.open[t.Security] = append(queue, lot{Quantity: t.Quantity, Cost: t.Price})

	case l.rules.Disposes(t.Action):
		queue, ok := l.open[t.Security]
		if !ok {
			return // nothing held, the whole sell is discarded
		}
		queue = queue.sell(t.Quantity, l.rules.Precision())
		if len(queue) == 0 {
			delete(l.open, t.Security)
			if i := slices.Index(l.order, t.Security); i >= 0 {
				l.order = slices.Delete(l.order, i, i+1)
			}
			return
		}
		l.open[t.Security] = queue
	}
}

// Securities returns the securities with open lots, in first-seen order.
func (l *Ledger) Securities() []string {
	return slices.Clone(l.order)
}

// Lots returns the open lot count for a security. Zero means the security
// is not held.
func (l *Ledger) Lots(security string) int {
	return len(l.open[security])
}
