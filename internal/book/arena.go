package book

import "matchbook/internal/common"

// noSlot marks the absence of a link in the intrusive FIFO. A real slot is
// never 0 because slot 0 is reserved as the arena's nil sentinel.
const noSlot uint32 = 0

// node is one arena-resident order record plus the intrusive doubly-linked
// list pointers used by its PriceLevel. Storing the list inline in a flat
// slice instead of heap-allocating individual nodes means a cancel or a
// fill never needs to traverse the level to find its neighbours — the
// index hands back the slot directly.
type node struct {
	order      common.Order
	prev, next uint32
	live       bool
}

// Arena owns the record of every order currently resting in the book,
// addressed by a stable slot number. Slots are recycled through a
// free list so a long-running book does not grow without bound.
type Arena struct {
	nodes []node
	free  []uint32
}

// NewArena returns an empty arena with slot 0 burned as the nil sentinel.
func NewArena() *Arena {
	return &Arena{nodes: make([]node, 1)}
}

// alloc stores order and returns the slot it now occupies.
func (a *Arena) alloc(o common.Order) uint32 {
	if n := len(a.free); n > 0 {
		slot := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[slot] = node{order: o, prev: noSlot, next: noSlot, live: true}
		return slot
	}
	a.nodes = append(a.nodes, node{order: o, prev: noSlot, next: noSlot, live: true})
	return uint32(len(a.nodes) - 1)
}

// release returns slot to the free list. The caller must have already
// unlinked it from any PriceLevel.
func (a *Arena) release(slot uint32) {
	a.nodes[slot] = node{}
	a.free = append(a.free, slot)
}

// Order returns the order record stored at slot.
func (a *Arena) Order(slot uint32) *common.Order {
	return &a.nodes[slot].order
}
