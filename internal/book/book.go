package book

import "matchbook/internal/common"

// Book composes the two side books, the shared order arena, and the order
// index into the single data structure the matching engine drives. It
// owns every order record: once an order rests here it is addressable in
// O(1) by id (Index), removable in O(1) from its level (arena links), and
// its side book exposes its level's best/worst ordering in O(log n) or
// better.
type Book struct {
	Bids  *SideBook
	Asks  *SideBook
	arena *Arena
	index *Index
}

// New returns an empty book.
func New() *Book {
	return &Book{
		Bids:  NewBidSideBook(),
		Asks:  NewAskSideBook(),
		arena: NewArena(),
		index: NewIndex(),
	}
}

func (b *Book) sideBook(side common.Side) *SideBook {
	if side == common.Buy {
		return b.Bids
	}
	return b.Asks
}

// Rest inserts order into the book as a new resting order. The caller
// must have already assigned order.ID and order.Sequence.
func (b *Book) Rest(order common.Order) {
	slot := b.arena.alloc(order)
	level := b.sideBook(order.Side).GetOrCreate(order.Price)
	level.append(b.arena, slot)
	b.index.Put(order.ID, Locator{Side: order.Side, Price: order.Price, slot: slot})
}

// Get returns a copy of the resting order with the given id.
func (b *Book) Get(id uint64) (common.Order, bool) {
	loc, ok := b.index.Get(id)
	if !ok {
		return common.Order{}, false
	}
	return *b.orderAt(loc), true
}

func (b *Book) orderAt(loc Locator) *common.Order {
	return b.arena.Order(loc.slot)
}

// CancelByID removes the resting order with the given id from its level
// and the index, erasing the level if it emptied. It returns the order as
// it stood immediately before removal.
func (b *Book) CancelByID(id uint64) (common.Order, bool) {
	loc, ok := b.index.Get(id)
	if !ok {
		return common.Order{}, false
	}
	sb := b.sideBook(loc.Side)
	level, ok := sb.Get(loc.Price)
	if !ok {
		return common.Order{}, false
	}

	removed := *b.orderAt(loc)
	level.remove(b.arena, loc.slot)
	b.index.Delete(id)
	if level.Empty() {
		sb.Remove(loc.Price)
	}
	return removed, true
}

// SetQuantity overwrites the remaining quantity of a resting order in
// place, preserving its position in the FIFO. Intended for the
// quantity-decrease modify path; callers must not grow the quantity this
// way since that would require re-establishing time priority.
func (b *Book) SetQuantity(id uint64, newQty uint64) (common.Order, bool) {
	loc, ok := b.index.Get(id)
	if !ok {
		return common.Order{}, false
	}
	level, ok := b.sideBook(loc.Side).Get(loc.Price)
	if !ok {
		return common.Order{}, false
	}
	level.setQuantity(b.arena, loc.slot, newQty)
	return *b.orderAt(loc), true
}

// Fill consumes up to qty from the order resting at the front of level,
// which must belong to sb. It returns the quantity actually filled and
// the id of the maker order consumed. When the maker's remaining quantity
// reaches zero it is removed from the level and the index, and the level
// itself is erased from sb if that empties it.
func (b *Book) Fill(sb *SideBook, level *PriceLevel, qty uint64) (filled uint64, makerID uint64) {
	slot := level.Front()
	maker := &b.arena.nodes[slot].order
	makerID = maker.ID
	filled = qty
	if maker.RemainingQuantity < filled {
		filled = maker.RemainingQuantity
	}

	if filled == maker.RemainingQuantity {
		level.remove(b.arena, slot)
		b.index.Delete(makerID)
		if level.Empty() {
			sb.Remove(level.Price)
		}
	} else {
		level.reduce(b.arena, slot, filled)
	}
	return filled, makerID
}

// RestingOrderCount returns the number of orders currently resting across
// both sides, for diagnostics and invariant checks.
func (b *Book) RestingOrderCount() int {
	return b.index.Len()
}
