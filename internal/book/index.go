package book

import "matchbook/internal/common"

// Locator is the non-owning handle the Index stores for a resting order:
// enough to find and unlink it in O(1) without touching any other order.
type Locator struct {
	Side  common.Side
	Price uint64
	slot  uint32
}

// Index maps an order id to its locator. An id is present iff the order
// is currently resting somewhere in the book.
type Index struct {
	byID map[uint64]Locator
}

// NewIndex returns an empty order index.
func NewIndex() *Index {
	return &Index{byID: make(map[uint64]Locator)}
}

// Put records loc for id, overwriting any previous entry.
func (idx *Index) Put(id uint64, loc Locator) {
	idx.byID[id] = loc
}

// Get returns the locator for id, if the order is resting.
func (idx *Index) Get(id uint64) (Locator, bool) {
	loc, ok := idx.byID[id]
	return loc, ok
}

// Delete removes id from the index.
func (idx *Index) Delete(id uint64) {
	delete(idx.byID, id)
}

// Len returns the number of currently resting orders.
func (idx *Index) Len() int {
	return len(idx.byID)
}
