package columnio

import (
	"log/slog"
	"os"

	"github.com/hupe1980/columnio/stream"
)

// SetLogger routes package-internal logging (leaked-stream teardown)
// through l. Pass nil to restore the process default.
func SetLogger(l *Logger) {
	if l == nil {
		stream.SetLogger(nil)
		return
	}
	stream.SetLogger(l.Logger)
}

// Logger wraps slog.Logger with I/O-specific field helpers so log lines
// carry consistent field names across the package.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil,
// a text handler to stderr at info level is used.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPath adds a file path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// WithCodec adds a compression codec name field to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// WithOffset adds a byte offset field to the logger.
func (l *Logger) WithOffset(offset int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("offset", offset),
	}
}

// WithSize adds a byte count field to the logger.
func (l *Logger) WithSize(size int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}
