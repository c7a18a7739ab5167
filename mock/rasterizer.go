package mock

import (
	"context"

	"github.com/fwojciec/htmlmerge"
)

var _ htmlmerge.Rasterizer = (*Rasterizer)(nil)

// Rasterizer is a mock implementation of htmlmerge.Rasterizer.
type Rasterizer struct {
	RasterizeFn func(ctx context.Context, src, dst string, size int) error
}

func (r *Rasterizer) Rasterize(ctx context.Context, src, dst string, size int) error {
	return r.RasterizeFn(ctx, src, dst, size)
}
