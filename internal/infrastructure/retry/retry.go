// Package retry provides bounded retry loops with exponential backoff, used
// for store connection attempts and optimistic-concurrency writes.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxRetries is the number of retries after the first attempt, so the
	// operation runs at most MaxRetries+1 times.
	MaxRetries int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay increases after each retry.
	Multiplier float64

	// JitterFactor is the factor for random jitter (0.0 to 1.0).
	// A value of 0.1 means up to 10% jitter will be added.
	JitterFactor float64

	// RetryIf is an optional predicate to determine if an error is retryable.
	// If nil, all errors are considered retryable.
	RetryIf func(error) bool
}

// DefaultConfig provides sensible defaults for retry behavior.
var DefaultConfig = Config{
	MaxRetries:   2,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
	RetryIf:      nil, // Retry all errors
}

// ConflictConfig is tuned for optimistic-concurrency write collisions, which
// resolve quickly once the colliding transaction commits. Callers must set
// RetryIf to the conflict predicate of their store.
var ConflictConfig = Config{
	MaxRetries:   3,
	InitialDelay: 20 * time.Millisecond,
	MaxDelay:     500 * time.Millisecond,
	Multiplier:   2.0,
	JitterFactor: 0.2,
	RetryIf:      nil,
}

// Do executes the function with retry logic.
// It returns nil if the function succeeds, or the last error if all attempts
// fail.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	return OnConflict(ctx, cfg, func(context.Context) error { return fn() }, nil)
}

// OnConflict wraps a single logical write in a bounded retry loop. After every
// failed attempt that the RetryIf predicate deems retryable, the onCollision
// handler runs once before the next attempt, giving the caller a chance to
// reload the conflicting state. Exhausting the retry budget returns the last
// error from the write itself, never a wrapper, so callers can still inspect
// the store's conflict taxonomy.
func OnConflict(ctx context.Context, cfg Config, write func(context.Context) error, onCollision func(context.Context) error) error {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = write(ctx)
		if lastErr == nil {
			return nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return lastErr
		}

		if attempt == cfg.MaxRetries {
			return lastErr
		}

		if onCollision != nil {
			if err := onCollision(ctx); err != nil {
				return err
			}
		}

		sleepTime := calculateSleepTime(delay, cfg.MaxDelay, cfg.JitterFactor)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleepTime):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}
}

// calculateSleepTime computes the sleep duration with jitter and max cap.
func calculateSleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	sleepTime := delay + jitter

	if sleepTime > maxDelay {
		sleepTime = maxDelay
	}

	return sleepTime
}

// WithRetryIf returns a new config with the given RetryIf predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxRetries returns a new config with the given retry budget.
func (c Config) WithMaxRetries(n int) Config {
	c.MaxRetries = n
	return c
}
