package llm

import (
	"context"
	"errors"
	"time"
)

// RetryProvider is a decorator that retries transient failures on a fixed
// schedule. The wait table is an explicit ordered list consumed one entry
// per failed attempt, so total attempts = len(Waits) + 1 and the exact
// timing stays testable.
type RetryProvider struct {
	inner Provider
	waits []time.Duration
}

// WithRetry wraps a Provider with the fixed retry schedule.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, waits: cfg.Waits}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt <= len(r.waits); attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !shouldRetry(err) || attempt == len(r.waits) {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.waits[attempt]):
		}
	}

	// The final attempt's failure is surfaced unmodified.
	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry reports whether another attempt could help. Non-success
// statuses and transport failures are retryable; malformed replies and
// configuration problems are not, and cancelled contexts never retry.
func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A reply that failed parsing or schema validation is terminal.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return false
	}

	// Token cap is a configuration issue, not transient.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	// Rate limits, 5xx, network failures: retry.
	return true
}
