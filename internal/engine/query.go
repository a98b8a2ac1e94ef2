package engine

import "matchbook/internal/book"

// PriceVolume is a single (price, aggregate resting volume) pair, as
// returned by depth and snapshot queries.
type PriceVolume struct {
	Price  uint64
	Volume uint64
}

// BestBid returns the best resting bid, if any.
func (e *Engine) BestBid() (PriceVolume, bool) {
	return levelOf(e.book.Bids.Best())
}

// BestAsk returns the best resting ask, if any.
func (e *Engine) BestAsk() (PriceVolume, bool) {
	return levelOf(e.book.Asks.Best())
}

func levelOf(pl *book.PriceLevel) (PriceVolume, bool) {
	if pl == nil {
		return PriceVolume{}, false
	}
	return PriceVolume{Price: pl.Price, Volume: pl.Volume}, true
}

// Depth returns up to max price levels on side, best first.
func (e *Engine) Depth(buySide bool, max int) []PriceVolume {
	sb := e.book.Bids
	if !buySide {
		sb = e.book.Asks
	}
	levels := sb.Levels()
	if max > 0 && max < len(levels) {
		levels = levels[:max]
	}
	out := make([]PriceVolume, len(levels))
	for i, pl := range levels {
		out[i] = PriceVolume{Price: pl.Price, Volume: pl.Volume}
	}
	return out
}

// Snapshot is the full resting book, both sides, best first.
type Snapshot struct {
	Bids []PriceVolume
	Asks []PriceVolume
}

// Snapshot returns the full resting book for diagnostics.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Bids: e.Depth(true, 0),
		Asks: e.Depth(false, 0),
	}
}
