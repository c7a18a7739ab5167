package htmlmerge

import "context"

// Rasterizer converts vector images to PNG.
type Rasterizer interface {
	// Rasterize renders the SVG at src into a size x size PNG at dst
	// with a transparent background.
	Rasterize(ctx context.Context, src, dst string, size int) error
}
