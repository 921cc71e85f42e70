// Package slog provides log/slog decorators for mdarchive services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mdarchive"
)

// Ensure LoggingConverter implements mdarchive.Converter and mdarchive.Prober.
var (
	_ mdarchive.Converter = (*LoggingConverter)(nil)
	_ mdarchive.Prober    = (*LoggingConverter)(nil)
)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   mdarchive.Converter
	engine string
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter. The engine name is
// included in every log line.
func NewLoggingConverter(next mdarchive.Converter, engine string, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, engine: engine, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(root *mdarchive.Node) (md string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("convert",
			"engine", c.engine,
			"bytes", len(md),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(root)
}

// Probe delegates to the wrapped converter when it can be probed and
// logs the result. Converters without a probe are reported available.
func (c *LoggingConverter) Probe() bool {
	ok := true
	if p, isProber := c.next.(mdarchive.Prober); isProber {
		ok = p.Probe()
	}
	c.logger.Info("probe", "engine", c.engine, "available", ok)
	return ok
}
