// Package fanout runs a function over a slice with a bounded number of
// goroutines and returns the outcomes in input order.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn once per item with at most limit calls in flight. A limit
// below 1 is treated as 1. Items still waiting for a slot when ctx is done
// get ctx.Err() and fn is not called for them. Run returns once every call
// has finished; an empty items yields an empty non-nil slice.
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
				defer func() { <-slots }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			v, err := fn(ctx, items[i])
			results[i] = Result[R]{Value: v, Err: err}
		})
	}

	wg.Wait()
	return results
}
