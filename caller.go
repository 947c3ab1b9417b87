package hookable

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Caller is a pluggable dispatch strategy. CallHookWith hands it the
// snapshot of hooks registered under a name plus the caller's argument
// list; the strategy decides ordering and concurrency. Results must be
// in registration order.
type Caller interface {
	Call(ctx context.Context, hooks []HookFunc, args []any) ([]any, error)
}

// SerialCaller invokes hooks one at a time in registration order.
// Hook k+1 does not start until hook k has returned. Each hook sees
// the original argument list, not a prior hook's result. The first
// error aborts the remaining hooks (fail-fast).
type SerialCaller struct{}

// Call implements Caller.
func (SerialCaller) Call(ctx context.Context, hooks []HookFunc, args []any) ([]any, error) {
	results := make([]any, 0, len(hooks))
	for _, fn := range hooks {
		result, err := fn(ctx, args...)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// ParallelCaller starts every hook concurrently with the same argument
// list using an errgroup. The first error cancels the group context
// handed to the hooks; Call waits for every started hook to return and
// reports that first error. On success, results are in registration
// order regardless of completion order.
type ParallelCaller struct{}

// Call implements Caller.
func (ParallelCaller) Call(ctx context.Context, hooks []HookFunc, args []any) ([]any, error) {
	results := make([]any, len(hooks))
	g, gctx := errgroup.WithContext(ctx)
	for i, fn := range hooks {
		i, fn := i, fn
		g.Go(func() error {
			result, err := fn(gctx, args...)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
