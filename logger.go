package tabgroup

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with tabgroup-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRunID tags the logger with a clustering run id.
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", runID),
	}
}

// LogDensity logs the outcome of the density clustering stage.
func (l *Logger) LogDensity(ctx context.Context, clusters, noise int, duration time.Duration) {
	l.DebugContext(ctx, "density clustering completed",
		"clusters", clusters,
		"noise", noise,
		"duration", duration,
	)
}

// LogFallback logs a fallback partitioning attempt.
func (l *Logger) LogFallback(ctx context.Context, k, groups int) {
	if groups == 0 {
		l.WarnContext(ctx, "fallback partitioning produced no valid groups",
			"k", k,
		)
	} else {
		l.InfoContext(ctx, "fallback partitioning succeeded",
			"k", k,
			"groups", groups,
		)
	}
}

// LogReassign logs the noise reassignment stage.
func (l *Logger) LogReassign(ctx context.Context, moved, remaining int) {
	l.DebugContext(ctx, "noise reassignment completed",
		"moved", moved,
		"remaining", remaining,
	)
}

// LogSplit logs the splitting of one oversized cluster.
func (l *Logger) LogSplit(ctx context.Context, parentID string, size, produced, dropped int, err error) {
	if err != nil {
		l.WarnContext(ctx, "split failed, keeping cluster unsplit",
			"cluster", parentID,
			"size", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "oversized cluster split",
			"cluster", parentID,
			"size", size,
			"produced", produced,
			"dropped", dropped,
		)
	}
}

// LogRun logs the completion of a clustering run.
func (l *Logger) LogRun(ctx context.Context, tabs, clusters, unclustered int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering run failed",
			"tabs", tabs,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clustering run completed",
			"tabs", tabs,
			"clusters", clusters,
			"unclustered", unclustered,
			"duration", duration,
		)
	}
}
