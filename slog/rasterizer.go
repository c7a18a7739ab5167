// Package slog provides logging decorators for htmlmerge services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlmerge"
)

// Ensure LoggingRasterizer implements htmlmerge.Rasterizer.
var _ htmlmerge.Rasterizer = (*LoggingRasterizer)(nil)

// LoggingRasterizer wraps a Rasterizer, logging successes at debug level
// and failures at error level.
type LoggingRasterizer struct {
	next   htmlmerge.Rasterizer
	logger *slog.Logger
}

// NewLoggingRasterizer creates a new LoggingRasterizer.
func NewLoggingRasterizer(next htmlmerge.Rasterizer, logger *slog.Logger) *LoggingRasterizer {
	return &LoggingRasterizer{next: next, logger: logger}
}

// Rasterize delegates to the wrapped rasterizer and logs the outcome.
func (r *LoggingRasterizer) Rasterize(ctx context.Context, src, dst string, size int) (err error) {
	defer func(begin time.Time) {
		if err != nil {
			r.logger.Error("rasterize failed",
				"path", src,
				"size", size,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		r.logger.Debug("rasterize",
			"path", src,
			"size", size,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Rasterize(ctx, src, dst, size)
}
