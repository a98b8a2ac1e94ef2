package book

import "github.com/tidwall/btree"

// SideBook is the ordered collection of price levels on one side of the
// book. Bids are ordered highest price first, asks lowest price first;
// which ordering applies is fixed at construction via the better
// predicate, mirroring the separate ascending/descending comparators a
// flat bid/ask pair would use.
//
// The btree gives get_or_create/remove their O(log n) contract; best() is
// kept O(1) by caching the current best level rather than re-deriving it
// from the tree on every call.
type SideBook struct {
	levels *btree.BTreeG[*PriceLevel]
	better func(a, b uint64) bool
	best   *PriceLevel
}

// NewBidSideBook returns a side book ordered with the highest price first.
func NewBidSideBook() *SideBook {
	return newSideBook(func(a, b uint64) bool { return a > b })
}

// NewAskSideBook returns a side book ordered with the lowest price first.
func NewAskSideBook() *SideBook {
	return newSideBook(func(a, b uint64) bool { return a < b })
}

func newSideBook(better func(a, b uint64) bool) *SideBook {
	return &SideBook{
		levels: btree.NewBTreeG(func(a, b *PriceLevel) bool {
			return better(a.Price, b.Price)
		}),
		better: better,
	}
}

// Best returns the top-of-book level, or nil if the side is empty. O(1).
func (sb *SideBook) Best() *PriceLevel {
	return sb.best
}

// Len reports the number of distinct price levels resting on this side.
func (sb *SideBook) Len() int {
	return sb.levels.Len()
}

// Get returns the existing level at price, if any, without creating one.
func (sb *SideBook) Get(price uint64) (*PriceLevel, bool) {
	return sb.levels.Get(&PriceLevel{Price: price})
}

// GetOrCreate returns the level at price, creating and inserting an empty
// one if it does not already exist. O(log n).
func (sb *SideBook) GetOrCreate(price uint64) *PriceLevel {
	if pl, ok := sb.levels.GetMut(&PriceLevel{Price: price}); ok {
		return pl
	}
	pl := newPriceLevel(price)
	sb.levels.Set(pl)
	sb.refreshBest()
	return pl
}

// Remove erases the level at price from the side book. The caller is
// responsible for only calling this once the level has emptied.
func (sb *SideBook) Remove(price uint64) {
	sb.levels.Delete(&PriceLevel{Price: price})
	sb.refreshBest()
}

// refreshBest recomputes the cached best pointer after a structural
// change (insert or erase) to the set of price levels. It does not run on
// the hot fill path, where the level set itself does not change.
func (sb *SideBook) refreshBest() {
	if pl, ok := sb.levels.Min(); ok {
		sb.best = pl
	} else {
		sb.best = nil
	}
}

// crossesPrice reports whether an incoming order limited at price would
// match against a resting level priced at levelPrice on this side.
func (sb *SideBook) crossesPrice(levelPrice, price uint64) bool {
	return !sb.better(price, levelPrice)
}

// Crosses reports whether price crosses the current best level on this
// side, i.e. whether an incoming order at price would match against it.
func (sb *SideBook) Crosses(price uint64) bool {
	if sb.best == nil {
		return false
	}
	return sb.crossesPrice(sb.best.Price, price)
}

// FillableVolume sums the resting volume available at or better than
// price, walking from best to worst and stopping as soon as either the
// levels stop crossing price or the running sum reaches target. It never
// mutates the book, making it safe to use as a fill-or-kill precheck.
func (sb *SideBook) FillableVolume(price uint64, target uint64) uint64 {
	var sum uint64
	sb.Walk(func(level *PriceLevel) bool {
		if !sb.crossesPrice(level.Price, price) {
			return false
		}
		sum += level.Volume
		return sum < target
	})
	return sum
}

// Walk iterates price levels from best to worst, invoking fn with each
// until fn returns false or the levels are exhausted.
func (sb *SideBook) Walk(fn func(pl *PriceLevel) bool) {
	sb.levels.Scan(fn)
}

// Levels returns a snapshot slice of price levels ordered best to worst.
func (sb *SideBook) Levels() []*PriceLevel {
	out := make([]*PriceLevel, 0, sb.levels.Len())
	sb.levels.Scan(func(pl *PriceLevel) bool {
		out = append(out, pl)
		return true
	})
	return out
}
