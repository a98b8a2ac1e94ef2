package matchbook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeSimpleCross(t *testing.T) {
	ob := New("AAPL")

	r1 := ob.Limit(LimitOrderOptions{Side: Buy, Quantity: 100, Price: 50, TimeInForce: GTC})
	assert.Equal(t, Rested, r1.Status)

	r2 := ob.Market(MarketOrderOptions{Side: Sell, Quantity: 50})
	assert.Equal(t, FullyFilled, r2.Status)
	require.Len(t, r2.Trades, 1)
	assert.Equal(t, Trade{MakerID: 1, TakerID: 2, Price: 50, Quantity: 50}, r2.Trades[0])

	bb, ok := ob.BestBid()
	require.True(t, ok)
	assert.Equal(t, uint64(50), bb.Price)
	assert.Equal(t, uint64(50), bb.Volume)
}

func TestFacadeModifyAndCancel(t *testing.T) {
	ob := New("AAPL")
	r1 := ob.Limit(LimitOrderOptions{Side: Buy, Quantity: 10, Price: 100, TimeInForce: GTC})
	require.Equal(t, Rested, r1.Status)

	newQty := uint64(5)
	r2 := ob.Modify(r1.ID, nil, &newQty)
	assert.Equal(t, Rested, r2.Status)
	assert.Equal(t, r1.ID, r2.ID, "quantity decrease at same price preserves the id")

	r3 := ob.Cancel(r1.ID)
	assert.Equal(t, Cancelled, r3.Status)
	assert.Equal(t, uint64(5), r3.QuantityRemaining)
}

func TestFacadeDepthAndSnapshot(t *testing.T) {
	ob := New("AAPL")
	ob.Limit(LimitOrderOptions{Side: Buy, Quantity: 10, Price: 100, TimeInForce: GTC})
	ob.Limit(LimitOrderOptions{Side: Buy, Quantity: 10, Price: 99, TimeInForce: GTC})
	ob.Limit(LimitOrderOptions{Side: Sell, Quantity: 10, Price: 105, TimeInForce: GTC})

	depth := ob.Depth(Buy, 1)
	require.Len(t, depth, 1)
	assert.Equal(t, uint64(100), depth[0].Price)

	snap := ob.Snapshot()
	assert.Len(t, snap.Bids, 2)
	assert.Len(t, snap.Asks, 1)
}

func TestFacadeStringRendersBothSidesBestFirst(t *testing.T) {
	ob := New("AAPL")
	ob.Limit(LimitOrderOptions{Side: Buy, Quantity: 10, Price: 100, TimeInForce: GTC})
	ob.Limit(LimitOrderOptions{Side: Sell, Quantity: 5, Price: 110, TimeInForce: GTC})
	ob.Limit(LimitOrderOptions{Side: Sell, Quantity: 5, Price: 105, TimeInForce: GTC})

	rendered := ob.String()
	lines := strings.Split(strings.TrimSpace(rendered), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "110 -> 5", lines[0])
	assert.Equal(t, "105 -> 5", lines[1])
	assert.Equal(t, "------", lines[2])
	assert.Equal(t, "100 -> 10", lines[3])
}
