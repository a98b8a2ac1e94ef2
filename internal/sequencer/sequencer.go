// Package sequencer is the single-writer concurrency wrapper that the core
// matching engine is not allowed to provide for itself. It owns one
// goroutine, supervised by a tomb, that drains a channel of commands and
// applies them to an underlying book one at a time, preserving the
// single-threaded discipline price-time priority depends on.
package sequencer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"matchbook/internal/common"
)

// book is the subset of the facade the sequencer drives. Kept as an
// interface so tests can wrap a fake without importing the root package.
type book interface {
	Limit(common.LimitOrderOptions) common.Result
	Market(common.MarketOrderOptions) common.Result
	Modify(id uint64, newPrice, newQuantity *uint64) common.Result
	Cancel(id uint64) common.Result
}

// kind discriminates the operation a command carries.
type kind int

const (
	kindLimit kind = iota
	kindMarket
	kindModify
	kindCancel
)

// command is one sequenced unit of work: an operation plus its arguments,
// a correlation id for log tracing, and a reply channel the submitter
// blocks on.
type command struct {
	correlationID uuid.UUID
	op            kind

	limitOpts  common.LimitOrderOptions
	marketOpts common.MarketOrderOptions
	id         uint64
	newPrice   *uint64
	newQty     *uint64

	reply chan common.Result
}

const commandQueueSize = 256

// Sequencer serializes concurrent callers onto a single book instance.
type Sequencer struct {
	book book
	cmds chan command
	t    *tomb.Tomb
}

// New wraps book behind a sequencer. Run must be called before Limit,
// Market, Modify or Cancel will make progress.
func New(b book) *Sequencer {
	return &Sequencer{
		book: b,
		cmds: make(chan command, commandQueueSize),
	}
}

// Run starts the writer loop and blocks until ctx is cancelled or Shutdown
// is called. It is meant to be run in its own goroutine by the caller.
func (s *Sequencer) Run(ctx context.Context) error {
	var t *tomb.Tomb
	t, ctx = tomb.WithContext(ctx)
	s.t = t

	log.Info().Msg("sequencer starting")
	t.Go(func() error {
		return s.writer(ctx)
	})
	return t.Wait()
}

// Shutdown stops the writer loop, draining commands already queued.
func (s *Sequencer) Shutdown() {
	if s.t == nil {
		return
	}
	log.Info().Msg("sequencer shutting down")
	s.t.Kill(nil)
}

func (s *Sequencer) writer(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			// Apply whatever is already queued before stopping.
			for {
				select {
				case cmd := <-s.cmds:
					cmd.reply <- s.apply(cmd)
				default:
					return nil
				}
			}
		case cmd := <-s.cmds:
			cmd.reply <- s.apply(cmd)
		}
	}
}

func (s *Sequencer) apply(cmd command) common.Result {
	var result common.Result
	switch cmd.op {
	case kindLimit:
		result = s.book.Limit(cmd.limitOpts)
	case kindMarket:
		result = s.book.Market(cmd.marketOpts)
	case kindModify:
		result = s.book.Modify(cmd.id, cmd.newPrice, cmd.newQty)
	case kindCancel:
		result = s.book.Cancel(cmd.id)
	}

	log.Debug().
		Str("correlationID", cmd.correlationID.String()).
		Str("status", result.Status.String()).
		Uint64("resultID", result.ID).
		Msg("command applied")
	return result
}

// submit enqueues cmd and blocks for its result, respecting ctx.
func (s *Sequencer) submit(ctx context.Context, cmd command) (common.Result, error) {
	cmd.correlationID = uuid.New()
	cmd.reply = make(chan common.Result, 1)

	select {
	case <-ctx.Done():
		return common.Result{}, fmt.Errorf("sequencer: submit cancelled: %w", ctx.Err())
	case s.cmds <- cmd:
	}

	select {
	case <-ctx.Done():
		return common.Result{}, fmt.Errorf("sequencer: await reply cancelled: %w", ctx.Err())
	case r := <-cmd.reply:
		return r, nil
	}
}

// Limit submits a limit order through the sequencer.
func (s *Sequencer) Limit(ctx context.Context, opts common.LimitOrderOptions) (common.Result, error) {
	return s.submit(ctx, command{op: kindLimit, limitOpts: opts})
}

// Market submits a market order through the sequencer.
func (s *Sequencer) Market(ctx context.Context, opts common.MarketOrderOptions) (common.Result, error) {
	return s.submit(ctx, command{op: kindMarket, marketOpts: opts})
}

// Modify submits a modify command through the sequencer.
func (s *Sequencer) Modify(ctx context.Context, id uint64, newPrice, newQuantity *uint64) (common.Result, error) {
	return s.submit(ctx, command{op: kindModify, id: id, newPrice: newPrice, newQty: newQuantity})
}

// Cancel submits a cancel command through the sequencer.
func (s *Sequencer) Cancel(ctx context.Context, id uint64) (common.Result, error) {
	return s.submit(ctx, command{op: kindCancel, id: id})
}
