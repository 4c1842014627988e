package fastcrc

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fastcrc-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithVariant adds the algorithm name to the logger.
func (l *Logger) WithVariant(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("variant", name),
	}
}

// WithBackend adds the engine backend to the logger.
func (l *Logger) WithBackend(b Backend) *Logger {
	return &Logger{
		Logger: l.Logger.With("backend", b.String()),
	}
}

// LogEngine logs engine construction.
func (l *Logger) LogEngine(ctx context.Context, name string, backend Backend, err error) {
	if err != nil {
		l.ErrorContext(ctx, "engine setup failed",
			"variant", name,
			"backend", backend.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "engine ready",
			"variant", name,
			"backend", backend.String(),
		)
	}
}

// LogCheck logs a check value verification.
func (l *Logger) LogCheck(ctx context.Context, name string, backend Backend, want, got uint32) {
	if want != got {
		l.ErrorContext(ctx, "check value mismatch",
			"variant", name,
			"backend", backend.String(),
			"want", want,
			"got", got,
		)
	} else {
		l.DebugContext(ctx, "check value verified",
			"variant", name,
			"backend", backend.String(),
			"crc", got,
		)
	}
}

// LogSum logs the checksum of one input.
func (l *Logger) LogSum(ctx context.Context, input string, bytes int64, sum uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "checksum failed",
			"input", input,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "checksum completed",
			"input", input,
			"bytes", bytes,
			"crc", sum,
		)
	}
}
