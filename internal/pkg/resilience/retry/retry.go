// Package retry runs operations that may fail temporarily with exponential
// backoff. It wraps avast/retry-go and exposes functional options for the
// number of attempts, the delay bounds and which errors are worth retrying.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
//
// Polling until a deadline:
//
//	r := retry.New(
//	    retry.WithAttempts(0), // unlimited, bounded by ctx
//	    retry.WithDelay(500*time.Millisecond),
//	    retry.WithMaxDelay(2*time.Second),
//	    retry.WithRetryIf(func(err error) bool { return !errors.Is(err, errFatal) }),
//	)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with retry logic.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted,
	// the retry predicate rejects an error, or ctx is done.
	//
	// Parameters:
	//   - ctx: bounds the whole execution, including the waits between attempts.
	//   - operation: must be safe to call more than once.
	//
	// Returns:
	//   - nil on success.
	//   - the error rejected by the retry predicate, unchanged.
	//   - ctx.Err() when ctx is done between attempts.
	//   - otherwise the last error (or every error, see WithLastErrorOnly).
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint // zero means unlimited
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	retryIf     func(error) bool
}

// Option configures a Retry built by New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry configured with opts. Defaults:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second, doubled after every attempt
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - retryIf:     every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.cfg.retryIf),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, including the first one.
// Zero retries until ctx is done. Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the wait before the first retry. Later waits double.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the wait between attempts. Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether Execute returns only the last error or
// all errors combined. Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf sets the predicate deciding whether an error is retried. An
// error rejected by fn ends the execution and is returned as is.
// Default: every error is retried.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}
