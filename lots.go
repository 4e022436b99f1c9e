package fifo

// lot is a single acquisition of a security: a remaining quantity and the
// unit cost fixed at acquisition time. Disposals only ever shrink Quantity;
// Cost never changes.
type lot struct {
	Quantity Quantity
	Cost     Price // cost per unit, not per lot
}

// lots is a queue of open lots for one security, oldest first.
type lots []lot

// sell consumes quantityToSell from the head of the queue using FIFO and
// returns the surviving queue.
//
// Both the requested quantity and each lot's remaining quantity are rounded
// to the given precision before every comparison, so that accumulated
// fractional disposals cannot leave a residual smaller than the precision
// alive, nor loop forever chasing it.
//
// If the queue runs out before the requested quantity does (a short sell or
// missing acquisition history), the excess is discarded silently: no
// negative lot is ever created.
func (l lots) sell(quantityToSell Quantity, precision int32) lots {
	remaining := quantityToSell.Round(precision)

	for remaining.IsPositive() && len(l) > 0 {
		head := &l[0]
		head.Quantity = head.Quantity.Round(precision)

		switch {
		case head.Quantity.Equal(remaining):
			// Exact match: the whole oldest lot goes.
			remaining = Q(0)
			l = l[1:]
		case head.Quantity.LessThan(remaining):
			// Oldest lot is not enough: consume it entirely and move on.
			remaining = remaining.Sub(head.Quantity).Round(precision)
			l = l[1:]
		default:
			// Oldest lot is larger: it survives, shrunk.
			head.Quantity = head.Quantity.Sub(remaining)
			remaining = Q(0)
		}
	}
	return l
}

// totalQuantity sums the remaining quantities of all open lots.
func (l lots) totalQuantity() Quantity {
	var total Quantity
	for _, currentLot := range l {
		total = total.Add(currentLot.Quantity)
	}
	return total
}

// averageCost is the quantity-weighted mean unit cost of the open lots, or
// zero when the queue holds no quantity.
func (l lots) averageCost() Price {
	var totalCost Price
	var totalQuantity Quantity
	for _, currentLot := range l {
		totalCost = totalCost.Add(currentLot.Cost.Mul(currentLot.Quantity))
		totalQuantity = totalQuantity.Add(currentLot.Quantity)
	}
	if !totalQuantity.IsPositive() {
		return P(0)
	}
	return totalCost.Div(totalQuantity)
}
