// Package fanout applies a function to a slice on a bounded pool of
// goroutines, keeping outcomes aligned with their inputs.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item. Err is set when the item failed or
// never got a slot.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn once per item with at most limit calls in flight, and blocks
// until every item is settled. results[i] always belongs to items[i].
//
// An item still waiting for a slot when ctx ends is settled with ctx.Err()
// and fn is not called for it. Calls already running are left to observe ctx
// themselves. A limit below 1 runs the items one at a time.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	slots := make(chan struct{}, max(limit, 1))
	var wg sync.WaitGroup
	for i := range items {
		wg.Go(func() {
			select {
			case slots <- struct{}{}:
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}
			defer func() { <-slots }()

			results[i].Value, results[i].Err = fn(ctx, items[i])
		})
	}
	wg.Wait()
	return results
}
