// Package chflow holds small context-aware channel helpers, so that
// goroutines blocked on a channel or a timer give up when their context is
// done.
package chflow

import (
	"context"
	"time"
)

// Receive waits for a value from ch. ok is false when ctx is done first or
// ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch. It returns false when ctx is done first.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Sleep pauses for d. It returns false when ctx is done before d elapses.
func Sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
