package engine

import (
	"matchbook/internal/book"
	"matchbook/internal/common"
)

func (e *Engine) opposite(side common.Side) *book.SideBook {
	if side == common.Buy {
		return e.book.Asks
	}
	return e.book.Bids
}

// cross walks the opposite side from best, consuming head orders in FIFO
// order while the level crosses the taker's limit (unbounded skips the
// price check entirely, as market orders have no limit). It mutates the
// book as it goes and returns the trades produced plus the quantity
// filled.
func (e *Engine) cross(takerID uint64, side common.Side, price uint64, unbounded bool, quantity uint64) ([]common.Trade, uint64) {
	opp := e.opposite(side)
	remaining := quantity
	var trades []common.Trade

	for remaining > 0 {
		level := opp.Best()
		if level == nil {
			break
		}
		if !unbounded && !opp.Crosses(price) {
			break
		}

		for remaining > 0 && level.Len() > 0 {
			filled, makerID := e.book.Fill(opp, level, remaining)
			trades = append(trades, common.Trade{
				MakerID:  makerID,
				TakerID:  takerID,
				Price:    level.Price,
				Quantity: filled,
			})
			remaining -= filled
		}
	}

	return trades, quantity - remaining
}

// fillable returns the resting volume available to a taker on side at
// price, without mutating the book. Used by the fill-or-kill precheck.
func (e *Engine) fillable(side common.Side, price uint64, target uint64) uint64 {
	return e.opposite(side).FillableVolume(price, target)
}
