package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hindren/qudprops/internal/blueprint"
)

// SheetAll resolves property sheets for a batch of entities concurrently.
// Entities are independent reads of the immutable tree, so they fan out
// across workers; a property that fails to apply is simply absent from its
// sheet. The only error returned is context cancellation.
func (g *Engine) SheetAll(ctx context.Context, entities []*blueprint.Entity) (map[string]PropertySheet, error) {
	sheets := make([]PropertySheet, len(entities))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range entities {
		i, e := i, e
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sheets[i] = g.Sheet(e)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]PropertySheet, len(entities))
	for i, e := range entities {
		out[e.Name] = sheets[i]
	}
	return out, nil
}
