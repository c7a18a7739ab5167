// Package oksvg rasterizes SVG icons to PNG using oksvg and rasterx.
package oksvg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/fwojciec/htmlmerge"
	"github.com/gabriel-vasile/mimetype"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Ensure Rasterizer implements htmlmerge.Rasterizer at compile time.
var _ htmlmerge.Rasterizer = (*Rasterizer)(nil)

// Rasterizer renders SVG files into square PNGs.
type Rasterizer struct{}

// NewRasterizer creates a new Rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Rasterize renders src into a size x size transparent PNG at dst. The
// drawing is scaled to fit and centered, preserving its aspect ratio.
func (r *Rasterizer) Rasterize(ctx context.Context, src, dst string, size int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if size <= 0 {
		return htmlmerge.Errorf(htmlmerge.EINVALID, "invalid icon size %d", size)
	}

	mtype, err := mimetype.DetectFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if !mtype.Is("image/svg+xml") {
		return htmlmerge.Errorf(htmlmerge.EINVALID, "%s is not an SVG image (detected %s)", src, mtype.String())
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f, oksvg.IgnoreErrorMode)
	if err != nil {
		return htmlmerge.Errorf(htmlmerge.EINVALID, "failed to parse %s: %v", src, err)
	}

	x, y, w, h := fitTarget(icon.ViewBox.W, icon.ViewBox.H, float64(size))
	icon.SetTarget(x, y, w, h)

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

// fitTarget returns the target rectangle for a w x h drawing centered in a
// size x size square. A degenerate view box fills the square.
func fitTarget(w, h, size float64) (x, y, tw, th float64) {
	if w <= 0 || h <= 0 {
		return 0, 0, size, size
	}
	scale := math.Min(size/w, size/h)
	tw, th = w*scale, h*scale
	return (size - tw) / 2, (size - th) / 2, tw, th
}
