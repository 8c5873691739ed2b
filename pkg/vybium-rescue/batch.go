package vybiumrescue

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// HashBatch applies fn to every input with at most workers calls in flight
// and returns the results in input order. The first failure cancels the
// remaining work and is returned with the index of the failing input.
func HashBatch[In, Out any](ctx context.Context, inputs []In, workers int, fn func(In) (Out, error)) ([]Out, error) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]Out, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := fn(inputs[i])
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
