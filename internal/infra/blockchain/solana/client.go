// Package solana implements the ledger capabilities of the coin-flip client
// on top of the Solana JSON-RPC API.
package solana

import (
	"bytes"
	"encoding/json"

	"github.com/gabapcia/coinflip/internal/bethistory"
	"github.com/gabapcia/coinflip/internal/game"
	"github.com/gabapcia/coinflip/internal/gamestate"
	"github.com/gabapcia/coinflip/internal/ledger"
	"github.com/gabapcia/coinflip/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/coinflip/internal/settlement"
)

// client talks to a Solana RPC node. Reads go through conn; submissions go
// through sendConn, which should not retry at the transport level so that a
// transaction is never broadcast twice by accident.
type client struct {
	conn       jsonrpc.Client
	sendConn   jsonrpc.Client
	commitment ledger.Commitment
}

var (
	_ settlement.Ledger        = (*client)(nil)
	_ gamestate.AccountFetcher = (*client)(nil)
	_ bethistory.Ledger        = (*client)(nil)
	_ game.Ledger              = (*client)(nil)
)

// contextResult is the slot-stamped wrapper most RPC results come in.
type contextResult[T any] struct {
	Context struct {
		Slot uint64 `json:"slot"`
	} `json:"context"`
	Value T `json:"value"`
}

type commitmentConfig struct {
	Commitment ledger.Commitment `json:"commitment,omitempty"`
}

// isNull reports whether raw is absent or the JSON literal null.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// readCommitment is the level used for historical reads. getTransaction and
// getSignaturesForAddress do not accept processed.
func (c *client) readCommitment() ledger.Commitment {
	if c.commitment == ledger.CommitmentProcessed {
		return ledger.CommitmentConfirmed
	}

	return c.commitment
}

type config struct {
	sendConn   jsonrpc.Client
	commitment ledger.Commitment
}

// Option configures the client returned by NewClient.
type Option func(*config)

// NewClient returns a Solana ledger client reading through conn.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		sendConn:   conn,
		commitment: ledger.CommitmentConfirmed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:       conn,
		sendConn:   cfg.sendConn,
		commitment: cfg.commitment,
	}
}

// WithSendConn sets the connection used by SendTransaction.
// Default: the read connection.
func WithSendConn(conn jsonrpc.Client) Option {
	return func(c *config) {
		c.sendConn = conn
	}
}

// WithCommitment sets the commitment used for account reads, preflight and
// historical lookups. Default: confirmed.
func WithCommitment(commitment ledger.Commitment) Option {
	return func(c *config) {
		c.commitment = commitment
	}
}
