package engine

import "matchbook/internal/common"

// Cancel removes a resting order from the book entirely.
func (e *Engine) Cancel(id uint64) common.Result {
	removed, ok := e.book.CancelByID(id)
	if !ok {
		return common.Reject(common.NotFound)
	}
	return common.Result{
		ID:                id,
		Status:            common.Cancelled,
		QuantityRemaining: removed.RemainingQuantity,
	}
}
