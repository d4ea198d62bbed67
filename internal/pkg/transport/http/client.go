// Package http builds the retrying HTTP client used to reach RPC endpoints.
// It wraps HashiCorp's retryablehttp.Client, routes its diagnostics through
// the logger package and exposes functional options for timeouts and retry
// behavior.
package http

import (
	"context"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/coinflip/internal/pkg/logger"
)

type config struct {
	timeout      time.Duration // per-request timeout
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int // retries after the first attempt; zero disables retrying
}

// Option configures the client returned by NewClient.
type Option func(*config)

// leveledLogger forwards retryablehttp diagnostics to the global logger.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.Error(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

// NewClient returns a retryablehttp.Client configured with opts. Defaults:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//
// Requests are retried on connection errors, 429 and 5xx responses.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

// WithTimeout sets the per-request timeout. Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum backoff between retries. Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum backoff between retries. Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried. Use zero for
// requests that must never be sent twice. Default: 2.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
