package codec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with codec-specific helpers.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithKind adds a component kind field to the logger.
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind),
	}
}

// LogEncode logs an encode operation.
func (l *Logger) LogEncode(length int, compression Compression, size int, err error) {
	if err != nil {
		l.Warn("encode failed",
			"length", length,
			"compression", compression.String(),
			"error", err,
		)
		return
	}
	l.Debug("encode completed",
		"length", length,
		"compression", compression.String(),
		"bytes", size,
	)
}

// LogDecode logs a decode operation.
func (l *Logger) LogDecode(length int, size int, err error) {
	if err != nil {
		l.Warn("decode failed",
			"bytes", size,
			"error", err,
		)
		return
	}
	l.Debug("decode completed",
		"length", length,
		"bytes", size,
	)
}
