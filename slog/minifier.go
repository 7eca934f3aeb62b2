// Package slog provides logging decorators for curator services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"curator"
)

// Ensure LoggingMinifier implements curator.Minifier at compile time.
var _ curator.Minifier = (*LoggingMinifier)(nil)

// LoggingMinifier wraps a Minifier with timing and failure logging.
type LoggingMinifier struct {
	next   curator.Minifier
	logger *slog.Logger
}

// NewLoggingMinifier creates a new LoggingMinifier.
func NewLoggingMinifier(next curator.Minifier, logger *slog.Logger) *LoggingMinifier {
	return &LoggingMinifier{next: next, logger: logger}
}

// Minify delegates to the wrapped minifier, logging the outcome.
func (m *LoggingMinifier) Minify(ctx context.Context, css []byte) (string, error) {
	begin := time.Now()
	out, err := m.next.Minify(ctx, css)
	if err != nil {
		m.logger.Warn("css minification failed",
			"error", curator.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return "", err
	}

	m.logger.Info("css minified",
		"bytes_in", len(css),
		"bytes_out", len(out),
		"duration", time.Since(begin),
	)
	return out, nil
}
