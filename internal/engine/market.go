package engine

import "matchbook/internal/common"

// Market validates and matches a market order. It behaves like a limit
// order with no price bound and TimeInForce = IOC: whatever cannot fill
// immediately is discarded, never rested.
func (e *Engine) Market(opts common.MarketOrderOptions) common.Result {
	if opts.Quantity == 0 {
		return common.Reject(common.InvalidQuantity)
	}

	id := e.mintID()
	trades, filled := e.cross(id, opts.Side, 0, true, opts.Quantity)
	remaining := opts.Quantity - filled

	result := common.Result{
		ID:                id,
		Trades:            trades,
		QuantityFilled:    filled,
		QuantityRemaining: 0,
	}

	switch {
	case remaining == 0:
		result.Status = common.FullyFilled
	case filled > 0:
		result.Status = common.PartiallyFilledCancelled
	default:
		result.Status = common.Cancelled
	}
	return result
}
