package engine

import "matchbook/internal/common"

// Modify changes a resting order's price and/or quantity. Only resting
// GTC orders can be modified — IOC and FOK orders never rest, so any id
// the index recognizes already satisfies that constraint.
//
// Policy (see design notes for the open-question rationale):
//   - A same-price quantity decrease mutates in place and preserves time
//     priority.
//   - A same-price quantity increase, or any price change, re-rests the
//     order behind a freshly minted id — it is implemented as a cancel
//     followed by a new limit(..., GTC) submission, which may cross and
//     produce trades.
func (e *Engine) Modify(id uint64, newPrice, newQuantity *uint64) common.Result {
	if newPrice == nil && newQuantity == nil {
		return common.Reject(common.InvalidQuantity)
	}
	if newPrice != nil && *newPrice == 0 {
		return common.Reject(common.InvalidPrice)
	}
	if newQuantity != nil && *newQuantity == 0 {
		return common.Reject(common.InvalidQuantity)
	}

	existing, ok := e.book.Get(id)
	if !ok {
		return common.Reject(common.NotFound)
	}

	priceChanged := newPrice != nil && *newPrice != existing.Price
	targetQty := existing.RemainingQuantity
	if newQuantity != nil {
		targetQty = *newQuantity
	}

	if !priceChanged {
		if targetQty == existing.RemainingQuantity {
			return common.Result{ID: id, Status: common.Rested, QuantityRemaining: existing.RemainingQuantity}
		}
		if targetQty < existing.RemainingQuantity {
			updated, _ := e.book.SetQuantity(id, targetQty)
			return common.Result{ID: id, Status: common.Rested, QuantityRemaining: updated.RemainingQuantity}
		}
	}

	// Either the price changed or the quantity grew: time priority is
	// lost, so replace the resting order wholesale.
	return e.replaceResting(id, existing.Side, newPriceOr(newPrice, existing.Price), targetQty)
}

func newPriceOr(newPrice *uint64, fallback uint64) uint64 {
	if newPrice != nil {
		return *newPrice
	}
	return fallback
}

// replaceResting cancels oldID and re-submits a fresh GTC limit order in
// its place. The result carries the newly minted id, not oldID.
func (e *Engine) replaceResting(oldID uint64, side common.Side, price, qty uint64) common.Result {
	if _, ok := e.book.CancelByID(oldID); !ok {
		return common.Reject(common.NotFound)
	}
	return e.Limit(common.LimitOrderOptions{
		Side:        side,
		Quantity:    qty,
		Price:       price,
		TimeInForce: common.GTC,
		PostOnly:    false,
	})
}
