// Package bethistory rebuilds a player's past bets from the ledger's public
// record: the signatures that touched an address, the receipts of those
// transactions, and the outcome markers the program writes to its logs.
package bethistory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/coinflip/internal/coinflip"
	"github.com/gabapcia/coinflip/internal/ledger"
	"github.com/gabapcia/coinflip/internal/pkg/logger"
	"github.com/gabapcia/coinflip/internal/pkg/telemetry"
)

const (
	// DefaultPageSize is the number of recent signatures inspected when the
	// caller does not choose one.
	DefaultPageSize = 10

	// MaxPageSize is the largest page the signature listing accepts.
	MaxPageSize = 1000
)

// ErrInvalidPageSize is returned for a page size outside 1..MaxPageSize.
var ErrInvalidPageSize = errors.New("invalid page size")

// BetRecord is a settled bet reconstructed from a transaction receipt.
type BetRecord struct {
	Signature ledger.Signature
	Amount    ledger.Lamports // |post - pre| balance of the first account
	Result    coinflip.Outcome
	Timestamp time.Time
}

// Ledger is the subset of the ledger client the reconstructor reads from.
type Ledger interface {
	// GetSignaturesForAddress lists up to limit signatures that involve
	// addr, most recent first.
	GetSignaturesForAddress(ctx context.Context, addr ledger.Address, limit int) ([]ledger.SignatureInfo, error)

	// GetTransaction returns the receipt of sig. It fails with
	// ledger.ErrTransactionNotFound when the ledger has no receipt for it.
	GetTransaction(ctx context.Context, sig ledger.Signature) (*ledger.Receipt, error)
}

// Service reconstructs bet history.
type Service interface {
	// Reconstruct returns the bets found among the pageSize most recent
	// transactions of address, in the order of the signature listing
	// (most recent first).
	//
	// Transactions whose receipt cannot be fetched, has no balances, or
	// carries no unambiguous outcome marker are skipped. Only a failure of
	// the signature listing itself is returned.
	//
	// Parameters:
	//   - ctx: passed to every ledger call.
	//   - address: the player whose history is inspected.
	//   - pageSize: 1..MaxPageSize signatures to inspect.
	//
	// Returns:
	//   - the reconstructed records, possibly empty.
	//   - ErrInvalidPageSize or the listing error.
	Reconstruct(ctx context.Context, address ledger.Address, pageSize int) ([]BetRecord, error)
}

type service struct {
	chain          Ledger
	now            func() time.Time
	maxConcurrency int
	tracer         trace.Tracer
}

var _ Service = (*service)(nil)

func (s *service) Reconstruct(ctx context.Context, address ledger.Address, pageSize int) ([]BetRecord, error) {
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: %d (expected 1..%d)", ErrInvalidPageSize, pageSize, MaxPageSize)
	}

	ctx = logger.Derive(ctx, "history.address", address.String())
	ctx, span := s.tracer.Start(ctx, "bethistory.Reconstruct", trace.WithAttributes(
		attribute.String("history.address", address.String()),
		attribute.Int("history.page_size", pageSize),
	))
	defer span.End()

	signatures, err := s.chain.GetSignaturesForAddress(ctx, address, pageSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list signatures: %w", err)
	}

	// Each fetch writes its own slot, so the listing order survives any
	// completion order.
	slots := make([]*BetRecord, len(signatures))

	limit := s.maxConcurrency
	if limit <= 0 {
		limit = pageSize
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, info := range signatures {
		g.Go(func() error {
			slots[i] = s.reconstructOne(ctx, info)
			return nil
		})
	}
	_ = g.Wait()

	records := make([]BetRecord, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			records = append(records, *r)
		}
	}

	span.SetAttributes(
		attribute.Int("history.signatures", len(signatures)),
		attribute.Int("history.records", len(records)),
	)

	return records, nil
}

// reconstructOne turns one signature into a record, or nil when the
// transaction is not a recognisable settled bet.
func (s *service) reconstructOne(ctx context.Context, info ledger.SignatureInfo) *BetRecord {
	ctx = logger.Derive(ctx, "tx.signature", info.Signature.String())

	receipt, err := s.chain.GetTransaction(ctx, info.Signature)
	switch {
	case errors.Is(err, ledger.ErrTransactionNotFound):
		logger.Debug(ctx, "skipping signature without receipt")
		return nil
	case err != nil:
		logger.Warn(ctx, "skipping signature, receipt fetch failed", "error", err)
		return nil
	case receipt == nil:
		return nil
	}

	outcome, ok := coinflip.ParseOutcome(receipt.LogMessages)
	if !ok {
		logger.Debug(ctx, "skipping transaction without a single outcome marker")
		return nil
	}

	if len(receipt.PreBalances) == 0 || len(receipt.PostBalances) == 0 {
		logger.Debug(ctx, "skipping transaction without balances")
		return nil
	}

	return &BetRecord{
		Signature: info.Signature,
		Amount:    ledger.AbsDiff(receipt.PostBalances[0], receipt.PreBalances[0]),
		Result:    outcome,
		Timestamp: s.timestamp(info, receipt),
	}
}

// timestamp prefers the listing's block time, then the receipt's, then the
// current time.
func (s *service) timestamp(info ledger.SignatureInfo, receipt *ledger.Receipt) time.Time {
	switch {
	case info.BlockTime != nil:
		return *info.BlockTime
	case receipt.BlockTime != nil:
		return *receipt.BlockTime
	default:
		return s.now()
	}
}

type config struct {
	now            func() time.Time
	maxConcurrency int
}

// Option configures the Service returned by New.
type Option func(*config)

// New returns a Service reading from chain.
func New(chain Ledger, opts ...Option) *service {
	cfg := config{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chain:          chain,
		now:            cfg.now,
		maxConcurrency: cfg.maxConcurrency,
		tracer:         otel.Tracer(telemetry.InstrumentationName),
	}
}

// WithClock sets the time source used for records without a block time.
// Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithMaxConcurrency caps the number of receipts fetched at once.
// Default: the page size.
func WithMaxConcurrency(n int) Option {
	return func(c *config) {
		c.maxConcurrency = n
	}
}
