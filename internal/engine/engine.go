// Package engine implements the matching policy layer: it validates
// commands, drives the price-time-priority cross algorithm, applies
// time-in-force and post-only rules, and mutates the underlying book
// (package matchbook/internal/book) as the sole consequence of an
// accepted command.
package engine

import (
	"matchbook/internal/book"
	"matchbook/internal/common"
)

// Engine holds the book and the monotonic counters used to mint order ids
// and rest-time sequence numbers. It is not safe for concurrent use; see
// matchbook/internal/sequencer for an external single-writer wrapper.
type Engine struct {
	book *book.Book

	nextID  uint64
	nextSeq uint64
}

// New returns an empty matching engine.
func New() *Engine {
	return &Engine{book: book.New()}
}

func (e *Engine) mintID() uint64 {
	e.nextID++
	return e.nextID
}

func (e *Engine) mintSequence() uint64 {
	e.nextSeq++
	return e.nextSeq
}

// rest inserts a new resting order, minting its time-priority sequence
// number at the moment it joins the book.
func (e *Engine) rest(id uint64, side common.Side, price, qty uint64, tif common.TimeInForce, postOnly bool) {
	e.book.Rest(common.Order{
		ID:                id,
		Side:              side,
		Price:             price,
		OriginalQuantity:  qty,
		RemainingQuantity: qty,
		TimeInForce:       tif,
		PostOnly:          postOnly,
		Sequence:          e.mintSequence(),
	})
}
