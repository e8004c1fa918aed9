package storage

import (
	"context"
	"time"
)

// RetryPolicy governs how upload attempts are retried. It is injected into
// the storage client so callers never hand-roll retry loops.
type RetryPolicy struct {
	MaxAttempts int
	// Backoff returns how long to wait before the given 1-based attempt.
	Backoff func(attempt int) time.Duration
	// Retryable decides whether an error is worth another attempt.
	Retryable func(err error) bool
}

// DefaultRetryPolicy mirrors the historical behavior: three attempts with a
// fixed one-second delay, every error retryable.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff:     func(int) time.Duration { return time.Second },
		Retryable:   func(error) bool { return true },
	}
}

// Do runs op under the policy, returning the last error once attempts are
// exhausted or the error is not retryable. Context cancellation aborts the
// wait between attempts.
func (p RetryPolicy) Do(ctx context.Context, op func() error) error {
	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if attempt > 1 {
			timer := time.NewTimer(p.Backoff(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}
