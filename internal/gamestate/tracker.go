package gamestate

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gabapcia/coinflip/internal/coinflip"
	"github.com/gabapcia/coinflip/internal/ledger"
	"github.com/gabapcia/coinflip/internal/pkg/logger"
	"github.com/gabapcia/coinflip/internal/pkg/x/chflow"
)

// Event is emitted by Follow after every read. Exactly one of State or Err
// is meaningful; a nil State with a nil Err means the game is not
// initialized.
type Event struct {
	State *coinflip.State
	Err   error
}

type snapshot struct {
	state *coinflip.State
}

// Tracker holds the latest snapshot of the state account. Every refresh
// replaces the snapshot as a whole; when refreshes overlap, the last one to
// finish wins.
type Tracker struct {
	fetcher      AccountFetcher
	stateAccount ledger.Address
	latest       atomic.Pointer[snapshot]
}

// NewTracker returns a Tracker for stateAccount. It holds no snapshot until
// the first successful Refresh.
func NewTracker(fetcher AccountFetcher, stateAccount ledger.Address) *Tracker {
	return &Tracker{
		fetcher:      fetcher,
		stateAccount: stateAccount,
	}
}

// Refresh reads the state account and, on success, replaces the snapshot.
// A failed read keeps the previous snapshot.
func (t *Tracker) Refresh(ctx context.Context) (*coinflip.State, error) {
	state, err := ReadState(ctx, t.fetcher, t.stateAccount)
	if err != nil {
		return nil, err
	}

	t.latest.Store(&snapshot{state: state})
	return state, nil
}

// Snapshot returns the latest state. ok is false before the first successful
// Refresh; a nil state with ok true means the game is not initialized.
func (t *Tracker) Snapshot() (state *coinflip.State, ok bool) {
	s := t.latest.Load()
	if s == nil {
		return nil, false
	}

	return s.state, true
}

// Follow refreshes the snapshot every interval and emits each result. The
// first read happens immediately. The returned channel is closed once ctx
// is done.
func (t *Tracker) Follow(ctx context.Context, interval time.Duration) <-chan Event {
	ch := make(chan Event)

	go func() {
		defer close(ch)

		ctx = logger.Derive(ctx, "game.state_account", t.stateAccount.String())
		for {
			state, err := t.Refresh(ctx)
			if err != nil && ctx.Err() == nil {
				logger.Warn(ctx, "failed to refresh game state", "error", err)
			}

			if !chflow.Send(ctx, ch, Event{State: state, Err: err}) {
				return
			}

			if !chflow.Sleep(ctx, interval) {
				return
			}
		}
	}()

	return ch
}
