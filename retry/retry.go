package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrExhausted is returned when every attempt of a policy has failed.
// Callers decide whether exhaustion is fatal; for image resolution it
// only means "fall back to the placeholder".
var ErrExhausted = errors.New("retry attempts exhausted")

// Policy is a bounded linear backoff: before retrying attempt i the
// caller waits Base + i*Step.
type Policy struct {
	MaxAttempts int
	Base        time.Duration
	Step        time.Duration
}

// ImagePolicy matches the backend's image-processing lag: ten attempts
// starting at 500ms and growing by 300ms per retry.
var ImagePolicy = Policy{MaxAttempts: 10, Base: 500 * time.Millisecond, Step: 300 * time.Millisecond}

// Do runs fn until it succeeds, the policy is exhausted, or ctx is
// cancelled. On exhaustion the last error is wrapped in ErrExhausted.
func Do(ctx context.Context, p Policy, fn func() error) error {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}

		// No sleep after the final attempt
		if attempt == p.MaxAttempts-1 {
			break
		}

		delay := p.Base + time.Duration(attempt)*p.Step
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("%w after %d attempts: %v", ErrExhausted, p.MaxAttempts, lastErr)
}
