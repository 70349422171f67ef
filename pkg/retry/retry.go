// Package retry runs operations with exponential backoff.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

// ErrInvalidPolicy is returned when a Policy cannot drive any attempt.
var ErrInvalidPolicy = errors.New("retry: MaxAttempts must be greater than 0")

// Policy describes how an operation is retried.
type Policy struct {
	// MaxAttempts counts the initial attempt.
	MaxAttempts int
	// InitialDelay is the wait before the second attempt.
	InitialDelay time.Duration
	// MaxDelay caps the wait between attempts.
	MaxDelay time.Duration
	// Multiplier grows the delay after every failed attempt.
	Multiplier float64
	// Jitter is the fraction of the delay randomized in both directions, 0 disables it.
	Jitter float64
	// Retryable decides whether an error is worth another attempt. Nil retries everything.
	Retryable func(error) bool
	// OnRetry is called before waiting for the next attempt.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// Default returns a policy of five attempts starting at one second.
func Default() Policy {
	return Policy{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.1,
	}
}

// Connection returns the default policy restricted to transient connection failures.
func Connection() Policy {
	p := Default()
	p.Retryable = MatchAny(TransientConnectionErrors...)
	return p
}

// TransientConnectionErrors are message fragments of failures that usually clear up on their own,
// such as a database container still starting.
var TransientConnectionErrors = []string{
	"connection refused",
	"connection reset",
	"connection timed out",
	"i/o timeout",
	"dial tcp",
	"network is unreachable",
	"no such host",
	"server closed the connection",
	"too many connections",
	"the database system is starting up",
	"database is locked",
}

// MatchAny reports errors whose message contains any of the patterns, ignoring case.
func MatchAny(patterns ...string) func(error) bool {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}
	return func(err error) bool {
		if err == nil {
			return false
		}
		msg := strings.ToLower(err.Error())
		for _, p := range lowered {
			if strings.Contains(msg, p) {
				return true
			}
		}
		return false
	}
}

// Do runs fn until it succeeds, fails with a non-retryable error, exhausts the policy
// or ctx is done.
func Do(ctx context.Context, p Policy, fn func(context.Context) error) error {
	_, err := DoWithResult(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// DoWithResult is Do for operations that produce a value.
func DoWithResult[T any](ctx context.Context, p Policy, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if p.MaxAttempts <= 0 {
		return zero, ErrInvalidPolicy
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if p.Retryable != nil && !p.Retryable(err) {
			return zero, err
		}
		if attempt == p.MaxAttempts {
			break
		}

		delay := p.jittered(p.Backoff(attempt))
		if p.OnRetry != nil {
			p.OnRetry(attempt, delay, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, lastErr
}

// Backoff returns the un-jittered wait after the given failed attempt (1-based).
func (p Policy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	delay := float64(p.InitialDelay) * math.Pow(multiplier, float64(attempt-1))
	if p.MaxDelay > 0 && delay > float64(p.MaxDelay) {
		delay = float64(p.MaxDelay)
	}
	return time.Duration(delay)
}

func (p Policy) jittered(delay time.Duration) time.Duration {
	if p.Jitter <= 0 || delay <= 0 {
		return delay
	}
	//nolint:gosec // jitter needs no cryptographic randomness
	offset := float64(delay) * p.Jitter * (rand.Float64()*2 - 1)
	return delay + time.Duration(offset)
}
