package sequencer

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchbook/internal/common"
	"matchbook/internal/engine"
)

func TestSequencerAppliesLimitOrders(t *testing.T) {
	e := engine.New()
	s := New(e)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	r, err := s.Limit(ctx, common.LimitOrderOptions{Side: common.Buy, Quantity: 10, Price: 100, TimeInForce: common.GTC})
	require.NoError(t, err)
	assert.Equal(t, common.Rested, r.Status)

	r2, err := s.Market(ctx, common.MarketOrderOptions{Side: common.Sell, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, common.FullyFilled, r2.Status)
}

func TestSequencerShutdownStopsWriter(t *testing.T) {
	e := engine.New()
	s := New(e)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	_, err := s.Limit(ctx, common.LimitOrderOptions{Side: common.Buy, Quantity: 1, Price: 1, TimeInForce: common.GTC})
	require.NoError(t, err)

	s.Shutdown()
	require.NoError(t, <-done, "Run returns once Shutdown has stopped the writer")
	cancel()
}

// Concurrent callers submitting through one sequencer must never violate
// the book's invariants, since the writer loop serializes them onto the
// single-threaded engine one command at a time.
func TestSequencerSerializesConcurrentCallers(t *testing.T) {
	e := engine.New()
	s := New(e)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	const goroutines = 16
	const commandsEach = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < commandsEach; i++ {
				side := common.Side(rng.Intn(2))
				price := uint64(90 + rng.Intn(20))
				qty := uint64(1 + rng.Intn(10))
				_, err := s.Limit(ctx, common.LimitOrderOptions{Side: side, Quantity: qty, Price: price, TimeInForce: common.GTC})
				assert.NoError(t, err)
			}
		}(int64(g))
	}
	wg.Wait()

	bb, bbOK := e.BestBid()
	ba, baOK := e.BestAsk()
	if bbOK && baOK {
		assert.Less(t, bb.Price, ba.Price, "book must never be crossed even under concurrent submission")
	}
}
