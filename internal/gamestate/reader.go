// Package gamestate reads the coin-flip program's state account and keeps
// the latest decoded snapshot.
package gamestate

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/coinflip/internal/coinflip"
	"github.com/gabapcia/coinflip/internal/ledger"
)

// ErrDecodeFailed is returned when the state account exists but its payload
// does not match the state layout. It wraps the codec error.
var ErrDecodeFailed = errors.New("failed to decode game state")

// AccountFetcher reads raw account data from the ledger.
type AccountFetcher interface {
	// GetAccount returns the data of the account at addr. It fails with
	// ledger.ErrAccountNotFound when the account does not exist.
	GetAccount(ctx context.Context, addr ledger.Address) ([]byte, error)
}

// ReadState fetches and decodes the state account.
//
// Returns:
//   - the decoded state on success.
//   - nil, nil when the account does not exist, i.e. the game was never
//     initialized.
//   - ErrDecodeFailed when the payload is malformed.
//   - the fetch error otherwise.
func ReadState(ctx context.Context, fetcher AccountFetcher, stateAccount ledger.Address) (*coinflip.State, error) {
	raw, err := fetcher.GetAccount(ctx, stateAccount)
	if errors.Is(err, ledger.ErrAccountNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	state, err := coinflip.DecodeState(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	return &state, nil
}
