package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mdarchive"
)

// Ensure LoggingExtractor implements mdarchive.Extractor.
var _ mdarchive.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   mdarchive.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mdarchive.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *mdarchive.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		if result != nil {
			title = result.Metadata.Title
		}
		e.logger.Info("extract",
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
