// Command bookctl is a small local harness for driving a sequencer-wrapped
// order book, either through a fixed scenario or a stream of randomly
// generated orders. It has no network surface; it exists to exercise the
// facade and sequencer end to end and print the resulting book.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"matchbook/internal/sequencer"

	"matchbook"
)

func main() {
	symbol := flag.String("symbol", "AAPL", "instrument symbol")
	scenario := flag.String("scenario", "random", "scenario to run: 'random' or 'cross'")
	orders := flag.Int("orders", 50, "number of random orders to generate (scenario=random)")
	seed := flag.Int64("seed", 1, "random seed (scenario=random)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ob := matchbook.New(*symbol)
	seq := sequencer.New(ob)
	go seq.Run(ctx)
	defer seq.Shutdown()

	switch *scenario {
	case "cross":
		runCrossScenario(ctx, seq)
	case "random":
		runRandomFlow(ctx, seq, *orders, *seed)
	default:
		fmt.Fprintf(os.Stderr, "unknown scenario %q\n", *scenario)
		os.Exit(1)
	}

	fmt.Println(ob.String())
}

func runCrossScenario(ctx context.Context, seq *sequencer.Sequencer) {
	r1, _ := seq.Limit(ctx, matchbook.LimitOrderOptions{Side: matchbook.Buy, Quantity: 100, Price: 50, TimeInForce: matchbook.GTC})
	log.Info().Uint64("id", r1.ID).Str("status", r1.Status.String()).Msg("resting buy placed")

	r2, _ := seq.Market(ctx, matchbook.MarketOrderOptions{Side: matchbook.Sell, Quantity: 50})
	log.Info().Uint64("id", r2.ID).Str("status", r2.Status.String()).Int("trades", len(r2.Trades)).Msg("market sell executed")
}

// runRandomFlow submits n randomly generated commands: GTC limit orders,
// except that once something has rested each step has a 10% chance of
// cancelling a previously resting order instead. It is grounded in the pack's pattern of
// generating random orders for a matching engine with a seeded RNG for
// reproducibility.
func runRandomFlow(ctx context.Context, seq *sequencer.Sequencer, n int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	var resting []uint64

	const cancelChance = 10 // percent

	for i := 0; i < n; i++ {
		if len(resting) > 0 && rng.Intn(100) < cancelChance {
			idx := rng.Intn(len(resting))
			id := resting[idx]
			resting = append(resting[:idx], resting[idx+1:]...)

			r, err := seq.Cancel(ctx, id)
			if err != nil {
				log.Error().Err(err).Msg("cancel submission failed")
				continue
			}
			log.Debug().Uint64("id", id).Str("status", r.Status.String()).Msg("cancel")
			continue
		}

		side := matchbook.Buy
		if rng.Intn(2) == 1 {
			side = matchbook.Sell
		}
		price := uint64(90 + rng.Intn(20))
		qty := uint64(1 + rng.Intn(50))

		r, err := seq.Limit(ctx, matchbook.LimitOrderOptions{Side: side, Quantity: qty, Price: price, TimeInForce: matchbook.GTC})
		if err != nil {
			log.Error().Err(err).Msg("limit submission failed")
			continue
		}
		log.Debug().Uint64("id", r.ID).Str("status", r.Status.String()).Msg("limit")
		if r.Status == matchbook.Rested || r.Status == matchbook.PartiallyFilledResting {
			resting = append(resting, r.ID)
		}
	}
}
