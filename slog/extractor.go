package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmlmerge"
)

// Ensure LoggingExtractor implements htmlmerge.Extractor.
var _ htmlmerge.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   htmlmerge.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next htmlmerge.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (frags []htmlmerge.Fragment, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"bytes", len(html),
			"fragments", len(frags),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
