package searchlight

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with searchlight-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NewTextLogger(slog.LevelInfo)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON lines to stderr at or above level.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger logs key=value lines to stderr at or above level.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards all records. It is the default when no logger is set.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithKind adds the searchlight kind (spatial, temporal, spatio-temporal).
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind),
	}
}

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(metric string) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", metric),
	}
}

// WithSeries adds a series field to the logger.
func (l *Logger) WithSeries(series int) *Logger {
	return &Logger{
		Logger: l.Logger.With("series", series),
	}
}

// WithCenter adds a temporal center field to the logger.
func (l *Logger) WithCenter(center int) *Logger {
	return &Logger{
		Logger: l.Logger.With("center", center),
	}
}

// LogFolds logs the fold tensor built for a stream.
func (l *Logger) LogFolds(ctx context.Context, nFolds, items, patches int) {
	l.InfoContext(ctx, "searchlight prepared",
		"folds", nFolds,
		"items", items,
		"patches", patches,
		"cross_validated", nFolds > 1,
	)
}

// LogPatch logs a single patch computation. The patch is identified by the
// fields added with WithSeries and WithCenter.
func (l *Logger) LogPatch(ctx context.Context, features int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "patch failed", "error", err)
		return
	}
	l.DebugContext(ctx, "patch computed", "features", features)
}

// LogStreamDone logs the end of a stream.
func (l *Logger) LogStreamDone(ctx context.Context, produced, total int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "searchlight stopped",
			"produced", produced,
			"total", total,
			"error", err,
		)
	case produced < total:
		l.InfoContext(ctx, "searchlight abandoned",
			"produced", produced,
			"total", total,
		)
	default:
		l.InfoContext(ctx, "searchlight completed",
			"produced", produced,
		)
	}
}
