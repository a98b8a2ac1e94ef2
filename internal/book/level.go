package book

// PriceLevel is a FIFO queue of resting orders at one price, plus a cached
// aggregate of their remaining quantity. The queue itself lives in the
// owning Arena as an intrusive doubly-linked list; PriceLevel only holds
// the head/tail slots, so appends, front-removal, and middle-removal (for
// cancel) are all O(1).
type PriceLevel struct {
	Price  uint64
	head   uint32
	tail   uint32
	count  int
	Volume uint64
}

func newPriceLevel(price uint64) *PriceLevel {
	return &PriceLevel{Price: price, head: noSlot, tail: noSlot}
}

// Empty reports whether the level has no resting orders left.
func (pl *PriceLevel) Empty() bool {
	return pl.count == 0
}

// Len returns the number of resting orders at this level.
func (pl *PriceLevel) Len() int {
	return pl.count
}

// Front returns the slot of the oldest resting order, or noSlot if empty.
func (pl *PriceLevel) Front() uint32 {
	return pl.head
}

// append adds slot to the tail of the FIFO and folds its remaining
// quantity into the cached volume.
func (pl *PriceLevel) append(a *Arena, slot uint32) {
	n := &a.nodes[slot]
	n.prev = pl.tail
	n.next = noSlot
	if pl.tail != noSlot {
		a.nodes[pl.tail].next = slot
	} else {
		pl.head = slot
	}
	pl.tail = slot
	pl.count++
	pl.Volume += n.order.RemainingQuantity
}

// remove splices slot out of the FIFO in O(1) and releases it back to the
// arena. The cached volume is decremented by whatever remaining quantity
// the order still carried.
func (pl *PriceLevel) remove(a *Arena, slot uint32) {
	n := &a.nodes[slot]
	pl.Volume -= n.order.RemainingQuantity

	if n.prev != noSlot {
		a.nodes[n.prev].next = n.next
	} else {
		pl.head = n.next
	}
	if n.next != noSlot {
		a.nodes[n.next].prev = n.prev
	} else {
		pl.tail = n.prev
	}
	pl.count--
	a.release(slot)
}

// setQuantity overwrites the remaining quantity of the order at slot,
// adjusting the cached volume by the delta. Used by in-place quantity
// modification, which must preserve the order's position in the FIFO.
func (pl *PriceLevel) setQuantity(a *Arena, slot uint32, newQty uint64) {
	old := a.nodes[slot].order.RemainingQuantity
	a.nodes[slot].order.RemainingQuantity = newQty
	pl.Volume = pl.Volume - old + newQty
}

// reduce decreases the remaining quantity of the order at slot by qty,
// keeping the cached volume consistent. It never removes the order even
// if it reaches zero — the caller decides whether to also call remove.
func (pl *PriceLevel) reduce(a *Arena, slot uint32, qty uint64) {
	a.nodes[slot].order.RemainingQuantity -= qty
	pl.Volume -= qty
}
