// Package settlement signs, submits and confirms transactions. It keeps the
// two failure modes of a submission apart: ErrSendFailed means the
// transaction was never accepted and will not execute, while
// ErrConfirmationTimeout means it was accepted but its outcome is unknown.
// Nothing here retries a submission.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/coinflip/internal/ledger"
	"github.com/gabapcia/coinflip/internal/pkg/logger"
	"github.com/gabapcia/coinflip/internal/pkg/resilience/retry"
	"github.com/gabapcia/coinflip/internal/pkg/telemetry"
)

var (
	// ErrSendFailed is returned when the transaction could not be signed or
	// was rejected on submission. It wraps the cause and guarantees that the
	// transaction was not executed.
	ErrSendFailed = errors.New("send failed")

	// ErrConfirmationTimeout is returned when the transaction was accepted but
	// did not reach the requested commitment in time. It may still land.
	ErrConfirmationTimeout = errors.New("confirmation timeout")

	// ErrTransactionFailed is returned when the ledger reports that the
	// transaction executed and failed.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrSubmissionInFlight is returned when another submission for the same
	// fee payer has not reached a terminal outcome yet.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

const (
	outcomeConfirmed = "confirmed"
	outcomeSendFail  = "send_failed"
	outcomeTimeout   = "timeout"
	outcomeFailed    = "failed"
	outcomeInFlight  = "in_flight"
	outcomeInvalid   = "invalid"
)

// Service submits transactions and waits for their confirmation.
type Service interface {
	// SubmitAndConfirm signs tx, sends it and polls until it reaches
	// commitment or the confirmation timeout elapses.
	//
	// Parameters:
	//   - ctx: bounds signing, sending and polling.
	//   - tx: a freshly built transaction; it is submitted exactly once.
	//   - commitment: processed, confirmed or finalized.
	//
	// Returns:
	//   - the transaction signature, also alongside ErrConfirmationTimeout and
	//     ErrTransactionFailed so the caller can inspect it later.
	//   - ErrSendFailed, ErrConfirmationTimeout, ErrTransactionFailed,
	//     ErrSubmissionInFlight or ledger.ErrInvalidCommitment on failure.
	SubmitAndConfirm(ctx context.Context, tx ledger.Transaction, commitment ledger.Commitment) (ledger.Signature, error)

	// AwaitConfirmation polls an already submitted signature with the same
	// bounds as SubmitAndConfirm.
	//
	// Returns nil, ErrConfirmationTimeout, ErrTransactionFailed or
	// ledger.ErrInvalidCommitment.
	AwaitConfirmation(ctx context.Context, sig ledger.Signature, commitment ledger.Commitment) error
}

type service struct {
	signer Signer
	chain  Ledger
	guard  InFlightGuard

	confirmTimeout time.Duration
	inFlightTTL    time.Duration
	poller         retry.Retry

	tracer      trace.Tracer
	submissions metric.Int64Counter
}

var _ Service = (*service)(nil)

func (s *service) SubmitAndConfirm(ctx context.Context, tx ledger.Transaction, commitment ledger.Commitment) (sig ledger.Signature, err error) {
	ctx = logger.Derive(ctx,
		"submission.id", uuid.Must(uuid.NewV7()).String(),
		"tx.fee_payer", tx.FeePayer.String(),
		"tx.commitment", string(commitment),
	)

	ctx, span := s.tracer.Start(ctx, "settlement.SubmitAndConfirm")
	defer func() {
		s.record(ctx, span, err)
		span.End()
	}()

	if !commitment.Valid() {
		return ledger.Signature{}, fmt.Errorf("%w: %q", ledger.ErrInvalidCommitment, commitment)
	}

	acquired, err := s.guard.TryAcquire(ctx, tx.FeePayer, s.inFlightTTL)
	if err != nil {
		return ledger.Signature{}, fmt.Errorf("%w: acquire in-flight lock: %w", ErrSendFailed, err)
	}

	if !acquired {
		return ledger.Signature{}, ErrSubmissionInFlight
	}

	defer func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), tx.FeePayer); err != nil {
			logger.Warn(ctx, "failed to release in-flight lock", "error", err)
		}
	}()

	signed, err := s.signer.SignTransaction(ctx, tx)
	if err != nil {
		return ledger.Signature{}, fmt.Errorf("%w: sign: %w", ErrSendFailed, err)
	}

	sig = signed.Signature
	ctx = logger.Derive(ctx, "tx.signature", sig.String())
	span.SetAttributes(attribute.String("tx.signature", sig.String()))

	sent, err := s.chain.SendTransaction(ctx, signed)
	if err != nil {
		return ledger.Signature{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	if sent != sig {
		logger.Warn(ctx, "ledger acknowledged a different signature", "tx.acknowledged_signature", sent.String())
	}

	logger.Debug(ctx, "transaction sent, awaiting confirmation")

	if err := s.await(ctx, sig, commitment); err != nil {
		return sig, err
	}

	logger.Info(ctx, "transaction confirmed")
	return sig, nil
}

func (s *service) AwaitConfirmation(ctx context.Context, sig ledger.Signature, commitment ledger.Commitment) error {
	if !commitment.Valid() {
		return fmt.Errorf("%w: %q", ledger.ErrInvalidCommitment, commitment)
	}

	ctx = logger.Derive(ctx, "tx.signature", sig.String(), "tx.commitment", string(commitment))

	ctx, span := s.tracer.Start(ctx, "settlement.AwaitConfirmation")
	defer span.End()

	err := s.await(ctx, sig, commitment)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

// await polls the confirmation status of sig until it reaches commitment,
// fails on the ledger, or the confirmation timeout elapses.
func (s *service) await(ctx context.Context, sig ledger.Signature, commitment ledger.Commitment) error {
	pollCtx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()

	err := s.poller.Execute(pollCtx, func() error {
		err := s.chain.ConfirmTransaction(pollCtx, sig, commitment)
		if err != nil && !errors.Is(err, ledger.ErrNotConfirmed) && !errors.Is(err, ledger.ErrTransactionFailed) {
			logger.Warn(ctx, "confirmation check failed", "error", err)
		}

		return err
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ledger.ErrTransactionFailed):
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	default:
		return fmt.Errorf("%w after %s: %w", ErrConfirmationTimeout, s.confirmTimeout, err)
	}
}

func (s *service) record(ctx context.Context, span trace.Span, err error) {
	outcome := outcomeConfirmed
	switch {
	case err == nil:
	case errors.Is(err, ErrSendFailed):
		outcome = outcomeSendFail
	case errors.Is(err, ErrConfirmationTimeout):
		outcome = outcomeTimeout
	case errors.Is(err, ErrTransactionFailed):
		outcome = outcomeFailed
	case errors.Is(err, ErrSubmissionInFlight):
		outcome = outcomeInFlight
	default:
		outcome = outcomeInvalid
	}

	s.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	if err != nil {
		logger.Error(ctx, "submission did not confirm", "submission.outcome", outcome, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

type config struct {
	confirmTimeout  time.Duration
	pollInterval    time.Duration
	maxPollInterval time.Duration
	guard           InFlightGuard
	inFlightTTL     time.Duration
}

// Option configures the Service returned by New.
type Option func(*config)

// New returns a Service that signs with signer and submits through chain.
//
// Defaults:
//   - confirm timeout:   30 seconds
//   - poll interval:     500ms, doubling up to 2 seconds
//   - in-flight guard:   process-local (NewMemoryGuard)
//   - in-flight TTL:     confirm timeout plus one minute
func New(signer Signer, chain Ledger, opts ...Option) *service {
	cfg := config{
		confirmTimeout:  30 * time.Second,
		pollInterval:    500 * time.Millisecond,
		maxPollInterval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.guard == nil {
		cfg.guard = NewMemoryGuard()
	}

	if cfg.inFlightTTL <= 0 {
		cfg.inFlightTTL = cfg.confirmTimeout + time.Minute
	}

	submissions, _ := otel.Meter(telemetry.InstrumentationName).Int64Counter(
		"coinflip.settlement.submissions",
		metric.WithDescription("Transaction submissions by terminal outcome"),
	)

	return &service{
		signer:         signer,
		chain:          chain,
		guard:          cfg.guard,
		confirmTimeout: cfg.confirmTimeout,
		inFlightTTL:    cfg.inFlightTTL,
		poller: retry.New(
			retry.WithAttempts(0),
			retry.WithDelay(cfg.pollInterval),
			retry.WithMaxDelay(cfg.maxPollInterval),
			retry.WithRetryIf(func(err error) bool {
				return !errors.Is(err, ledger.ErrTransactionFailed)
			}),
		),
		tracer:      otel.Tracer(telemetry.InstrumentationName),
		submissions: submissions,
	}
}

// WithConfirmTimeout bounds how long a submission waits for its commitment.
// Default: 30 seconds.
func WithConfirmTimeout(d time.Duration) Option {
	return func(c *config) {
		c.confirmTimeout = d
	}
}

// WithPollInterval sets the wait before the second status check. Later waits
// double up to the max poll interval. Default: 500ms.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithMaxPollInterval caps the wait between status checks. Default: 2 seconds.
func WithMaxPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.maxPollInterval = d
	}
}

// WithInFlightGuard replaces the process-local guard, e.g. with the Redis
// guard to serialize submissions across processes.
func WithInFlightGuard(g InFlightGuard) Option {
	return func(c *config) {
		c.guard = g
	}
}

// WithInFlightTTL sets how long an unreleased in-flight lock survives.
// Default: confirm timeout plus one minute.
func WithInFlightTTL(d time.Duration) Option {
	return func(c *config) {
		c.inFlightTTL = d
	}
}
