package hookable

import (
	"context"
	"time"

	"github.com/billymaulana/hookable/backoff"
)

// RetryCaller is a serial dispatch strategy that retries each failed
// hook before giving up. Pass it to CallHookWith:
//
//	caller := hookable.NewRetryCaller(backoff.NewExponential(100*time.Millisecond, 5*time.Second), 3)
//	results, err := h.CallHookWith(ctx, caller, "deploy:publish", artifact)
//
// Ordering matches SerialCaller: hook k+1 does not start until hook k
// has settled, including all of its retries.
type RetryCaller struct {
	// Strategy computes the delay before each retry. A nil strategy
	// retries immediately.
	Strategy backoff.Strategy

	// MaxAttempts is the total number of invocations per hook,
	// including the first. Values below 1 are treated as 1.
	MaxAttempts int
}

// NewRetryCaller creates a retrying serial caller.
func NewRetryCaller(strategy backoff.Strategy, maxAttempts int) *RetryCaller {
	return &RetryCaller{Strategy: strategy, MaxAttempts: maxAttempts}
}

// Call implements Caller.
func (c *RetryCaller) Call(ctx context.Context, hooks []HookFunc, args []any) ([]any, error) {
	results := make([]any, 0, len(hooks))
	for _, fn := range hooks {
		result, err := c.callOne(ctx, fn, args)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (c *RetryCaller) callOne(ctx context.Context, fn HookFunc, args []any) (any, error) {
	attempts := c.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := fn(ctx, args...)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if attempt == attempts {
			break
		}

		var delay time.Duration
		if c.Strategy != nil {
			delay = c.Strategy.Delay(attempt)
		}
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}
	return nil, lastErr
}
