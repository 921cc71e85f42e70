package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdarchive"
)

// Ensure LoggingWriter implements mdarchive.ArticleWriter.
var _ mdarchive.ArticleWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps an ArticleWriter with debug logging.
type LoggingWriter struct {
	next   mdarchive.ArticleWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next mdarchive.ArticleWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteArticle delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteArticle(ctx context.Context, article *mdarchive.Article) (name string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write article",
			"name", name,
			"engine", article.Engine,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteArticle(ctx, article)
}
