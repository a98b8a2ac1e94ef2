package engine

import "matchbook/internal/common"

// Limit validates, matches, and (if a GTC residual remains) rests a limit
// order. It is atomic: on any rejection the book is untouched.
func (e *Engine) Limit(opts common.LimitOrderOptions) common.Result {
	if opts.Quantity == 0 {
		return common.Reject(common.InvalidQuantity)
	}
	if opts.Price == 0 {
		return common.Reject(common.InvalidPrice)
	}
	if opts.PostOnly && opts.TimeInForce != common.GTC {
		return common.Reject(common.InvalidTIF)
	}

	if opts.PostOnly && e.opposite(opts.Side).Crosses(opts.Price) {
		return common.Reject(common.WouldCross)
	}

	if opts.TimeInForce == common.FOK {
		if e.fillable(opts.Side, opts.Price, opts.Quantity) < opts.Quantity {
			return common.Reject(common.InsufficientLiquidity)
		}
	}

	id := e.mintID()
	trades, filled := e.cross(id, opts.Side, opts.Price, false, opts.Quantity)
	remaining := opts.Quantity - filled

	result := common.Result{
		ID:                id,
		Trades:            trades,
		QuantityFilled:    filled,
		QuantityRemaining: remaining,
	}

	if remaining == 0 {
		result.Status = common.FullyFilled
		return result
	}

	switch opts.TimeInForce {
	case common.IOC:
		result.QuantityRemaining = 0
		if filled > 0 {
			result.Status = common.PartiallyFilledCancelled
		} else {
			result.Status = common.Cancelled
		}
	case common.FOK:
		// Unreachable: the precheck above guarantees a full fill whenever
		// we get this far.
		panic("engine: FOK order left a residual after a satisfied precheck")
	default: // GTC
		e.rest(id, opts.Side, opts.Price, remaining, opts.TimeInForce, opts.PostOnly)
		if filled > 0 {
			result.Status = common.PartiallyFilledResting
		} else {
			result.Status = common.Rested
		}
	}
	return result
}
