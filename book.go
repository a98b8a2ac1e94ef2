// Package matchbook is an in-process limit order book matching engine for
// a single instrument. It accepts limit, market, modify, and cancel
// commands, matches them under strict price-time priority, and exposes
// the resting book through read-only queries.
//
// The engine is single-threaded by contract: every operation below must
// run to completion before the next begins. Callers that need concurrent
// access should either serialize externally or use
// matchbook/internal/sequencer, which wraps an OrderBook behind a
// single-writer command loop.
package matchbook

import (
	"fmt"
	"strings"

	"matchbook/internal/common"
	"matchbook/internal/engine"
)

// Re-exported vocabulary so callers never need to reach into internal/common.
type (
	Side               = common.Side
	TimeInForce        = common.TimeInForce
	Status             = common.Status
	RejectReason       = common.RejectReason
	Trade              = common.Trade
	Result             = common.Result
	LimitOrderOptions  = common.LimitOrderOptions
	MarketOrderOptions = common.MarketOrderOptions
	PriceVolume        = engine.PriceVolume
	Snapshot           = engine.Snapshot
)

const (
	Buy  = common.Buy
	Sell = common.Sell
)

const (
	GTC = common.GTC
	IOC = common.IOC
	FOK = common.FOK
)

const (
	FullyFilled              = common.FullyFilled
	PartiallyFilledResting   = common.PartiallyFilledResting
	PartiallyFilledCancelled = common.PartiallyFilledCancelled
	Rested                   = common.Rested
	Cancelled                = common.Cancelled
	Rejected                 = common.Rejected
)

const (
	InvalidQuantity       = common.InvalidQuantity
	InvalidPrice          = common.InvalidPrice
	InvalidTIF            = common.InvalidTIF
	WouldCross            = common.WouldCross
	InsufficientLiquidity = common.InsufficientLiquidity
	NotFound              = common.NotFound
)

// OrderBook is the public facade (C6): it owns the instrument symbol, the
// engine (and through it the side books and order index), and exposes the
// mutating commands plus read-only queries.
type OrderBook struct {
	Symbol string
	engine *engine.Engine
}

// New returns an empty order book for symbol.
func New(symbol string) *OrderBook {
	return &OrderBook{Symbol: symbol, engine: engine.New()}
}

// Limit submits a limit order.
func (b *OrderBook) Limit(opts LimitOrderOptions) Result {
	return b.engine.Limit(opts)
}

// Market submits a market order.
func (b *OrderBook) Market(opts MarketOrderOptions) Result {
	return b.engine.Market(opts)
}

// Modify changes a resting order's price and/or quantity. Passing nil for
// a field leaves it unchanged; at least one must be non-nil.
func (b *OrderBook) Modify(id uint64, newPrice, newQuantity *uint64) Result {
	return b.engine.Modify(id, newPrice, newQuantity)
}

// Cancel removes a resting order.
func (b *OrderBook) Cancel(id uint64) Result {
	return b.engine.Cancel(id)
}

// BestBid returns the best resting bid, if any.
func (b *OrderBook) BestBid() (PriceVolume, bool) {
	return b.engine.BestBid()
}

// BestAsk returns the best resting ask, if any.
func (b *OrderBook) BestAsk() (PriceVolume, bool) {
	return b.engine.BestAsk()
}

// Depth returns up to n resting price levels on side, best first. n <= 0
// means unbounded.
func (b *OrderBook) Depth(side Side, n int) []PriceVolume {
	return b.engine.Depth(side == Buy, n)
}

// Snapshot returns the full resting book for diagnostics.
func (b *OrderBook) Snapshot() Snapshot {
	return b.engine.Snapshot()
}

// String renders the book for human inspection: asks top-down (highest
// price first), a rule, then bids top-down (highest first). This is a
// diagnostics aid only, not a stable interface.
func (b *OrderBook) String() string {
	snap := b.Snapshot()

	var sb strings.Builder
	for i := len(snap.Asks) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%d -> %d\n", snap.Asks[i].Price, snap.Asks[i].Volume)
	}
	sb.WriteString("------\n")
	for _, lv := range snap.Bids {
		fmt.Fprintf(&sb, "%d -> %d\n", lv.Price, lv.Volume)
	}
	return sb.String()
}
