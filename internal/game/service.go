// Package game coordinates the player-facing actions of the coin-flip
// client: placing a bet and reporting its outcome, reading the game state,
// listing past bets and requesting faucet funds. It composes the
// settlement, gamestate and bethistory services.
//
// The outcome of a bet is always taken from the confirmed receipt's logs.
// The client never guesses it locally.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/coinflip/internal/bethistory"
	"github.com/gabapcia/coinflip/internal/coinflip"
	"github.com/gabapcia/coinflip/internal/ledger"
	"github.com/gabapcia/coinflip/internal/pkg/logger"
	"github.com/gabapcia/coinflip/internal/settlement"
)

// DefaultAirdropAmount is the faucet request size when none is given.
const DefaultAirdropAmount ledger.Lamports = ledger.LamportsPerSOL

// Config holds the identifiers the game operates on. Every value comes from
// explicit configuration.
type Config struct {
	ProgramID    ledger.Address
	StateAccount ledger.Address
	Player       ledger.Address
	Commitment   ledger.Commitment
	PageSize     int
}

// Settlement is the result of a confirmed bet.
type Settlement struct {
	Signature ledger.Signature
	Outcome   coinflip.Outcome // OutcomeUnknown when the receipt was not yet visible
	State     *coinflip.State  // nil when the refresh after settlement failed
}

// Ledger is the subset of the ledger client the game calls directly.
type Ledger interface {
	// GetLatestBlockhash returns a freshness token at commitment.
	GetLatestBlockhash(ctx context.Context, commitment ledger.Commitment) (ledger.Blockhash, error)

	// GetTransaction returns the receipt of sig, or
	// ledger.ErrTransactionNotFound.
	GetTransaction(ctx context.Context, sig ledger.Signature) (*ledger.Receipt, error)

	// RequestAirdrop asks the faucet to credit amount to addr.
	RequestAirdrop(ctx context.Context, addr ledger.Address, amount ledger.Lamports) (ledger.Signature, error)
}

// StateTracker refreshes the game state snapshot.
type StateTracker interface {
	Refresh(ctx context.Context) (*coinflip.State, error)
}

// Service exposes the player actions.
type Service interface {
	// PlaceBet wagers amount on side and waits for the bet to settle.
	//
	// The flow is: validate the amount, fetch a fresh blockhash, build the
	// transaction, submit and confirm it, refresh the game state and read
	// the outcome from the receipt. A failed refresh or an unreadable
	// receipt does not fail the bet; they leave State nil or Outcome
	// unknown.
	//
	// Returns coinflip.ErrInvalidAmount before any network access, or the
	// settlement errors (settlement.ErrSendFailed,
	// settlement.ErrConfirmationTimeout, ...). On a confirmation timeout
	// the returned Settlement still carries the signature.
	PlaceBet(ctx context.Context, amount ledger.Lamports, side coinflip.Side) (Settlement, error)

	// State refreshes and returns the game state; nil means the game is not
	// initialized.
	State(ctx context.Context) (*coinflip.State, error)

	// History reconstructs the bets of address. The zero address means the
	// player; a pageSize of zero means the configured page size.
	History(ctx context.Context, address ledger.Address, pageSize int) ([]bethistory.BetRecord, error)

	// Airdrop requests amount lamports from the faucet for the player and
	// waits for the credit to confirm. Zero means DefaultAirdropAmount.
	Airdrop(ctx context.Context, amount ledger.Lamports) (ledger.Signature, error)

	// Player returns the fee payer of every submission.
	Player() ledger.Address
}

type service struct {
	cfg Config

	chain   Ledger
	settler settlement.Service
	tracker StateTracker
	history bethistory.Service
}

var _ Service = (*service)(nil)

func (s *service) PlaceBet(ctx context.Context, amount ledger.Lamports, side coinflip.Side) (Settlement, error) {
	if err := coinflip.ValidateAmount(amount); err != nil {
		return Settlement{}, err
	}

	ctx = logger.Derive(ctx, "bet.amount", uint64(amount), "bet.side", side.String())

	blockhash, err := s.chain.GetLatestBlockhash(ctx, s.cfg.Commitment)
	if err != nil {
		return Settlement{}, fmt.Errorf("%w: fetch blockhash: %w", settlement.ErrSendFailed, err)
	}

	tx, err := coinflip.BuildBetTransaction(s.cfg.Player, s.cfg.StateAccount, s.cfg.ProgramID, amount, side, blockhash)
	if err != nil {
		return Settlement{}, err
	}

	sig, err := s.settler.SubmitAndConfirm(ctx, tx, s.cfg.Commitment)
	if err != nil {
		return Settlement{Signature: sig}, err
	}

	ctx = logger.Derive(ctx, "tx.signature", sig.String())
	result := Settlement{Signature: sig}

	if result.State, err = s.tracker.Refresh(ctx); err != nil {
		logger.Warn(ctx, "failed to refresh game state after bet", "error", err)
	}

	result.Outcome = s.outcome(ctx, sig)
	logger.Info(ctx, "bet settled", "bet.outcome", result.Outcome.String())

	return result, nil
}

// outcome reads the outcome markers of sig's receipt.
func (s *service) outcome(ctx context.Context, sig ledger.Signature) coinflip.Outcome {
	receipt, err := s.chain.GetTransaction(ctx, sig)
	if err != nil {
		if !errors.Is(err, ledger.ErrTransactionNotFound) {
			logger.Warn(ctx, "failed to fetch bet receipt", "error", err)
		}
		return coinflip.OutcomeUnknown
	}

	if receipt == nil {
		return coinflip.OutcomeUnknown
	}

	outcome, ok := coinflip.ParseOutcome(receipt.LogMessages)
	if !ok {
		logger.Warn(ctx, "bet receipt carries no single outcome marker")
		return coinflip.OutcomeUnknown
	}

	return outcome
}

func (s *service) State(ctx context.Context) (*coinflip.State, error) {
	return s.tracker.Refresh(ctx)
}

func (s *service) History(ctx context.Context, address ledger.Address, pageSize int) ([]bethistory.BetRecord, error) {
	if address.IsZero() {
		address = s.cfg.Player
	}

	if pageSize == 0 {
		pageSize = s.cfg.PageSize
	}

	return s.history.Reconstruct(ctx, address, pageSize)
}

func (s *service) Airdrop(ctx context.Context, amount ledger.Lamports) (ledger.Signature, error) {
	if amount == 0 {
		amount = DefaultAirdropAmount
	}

	ctx = logger.Derive(ctx, "airdrop.amount", uint64(amount))

	sig, err := s.chain.RequestAirdrop(ctx, s.cfg.Player, amount)
	if err != nil {
		return ledger.Signature{}, fmt.Errorf("request airdrop: %w", err)
	}

	if err := s.settler.AwaitConfirmation(ctx, sig, s.cfg.Commitment); err != nil {
		return sig, err
	}

	logger.Info(ctx, "airdrop confirmed", "tx.signature", sig.String())
	return sig, nil
}

func (s *service) Player() ledger.Address {
	return s.cfg.Player
}

// New returns a Service for cfg. A zero Commitment defaults to confirmed and
// a zero PageSize to bethistory.DefaultPageSize.
func New(cfg Config, chain Ledger, settler settlement.Service, tracker StateTracker, history bethistory.Service) *service {
	if cfg.Commitment == "" {
		cfg.Commitment = ledger.CommitmentConfirmed
	}

	if cfg.PageSize == 0 {
		cfg.PageSize = bethistory.DefaultPageSize
	}

	return &service{
		cfg:     cfg,
		chain:   chain,
		settler: settler,
		tracker: tracker,
		history: history,
	}
}
