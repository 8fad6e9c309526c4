package render

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/hyper/pkg/markup"
)

// RenderMany renders independent trees concurrently with at most limit
// renders in flight (no limit when limit <= 0). Results keep the order of
// nodes. The first failure cancels the remaining renders.
func (r *Renderer) RenderMany(ctx context.Context, nodes []markup.Node, limit int) ([]string, error) {
	out := make([]string, len(nodes))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, n := range nodes {
		g.Go(func() error {
			s, err := r.RenderToString(ctx, n)
			if err != nil {
				return fmt.Errorf("render: node %d: %w", i, err)
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
