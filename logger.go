package refdict

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with refdict-specific helpers.
// It is the warning sink used by Merge; the dictionary container itself
// never logs.
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
// Use this to disable merge warnings entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSequence adds a sequence name field to the logger.
func (l *Logger) WithSequence(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("sequence", name),
	}
}

// LogTagConflict logs a non-strict tag disagreement resolved during a merge.
// kept is the value the merge resolved to.
func (l *Logger) LogTagConflict(sequence, tag, left, right, kept string) {
	l.Warn("sequence tag values differ, using first dictionary's value",
		"sequence", sequence,
		"tag", tag,
		"value1", left,
		"value2", right,
		"using", kept,
	)
}

// LogLengthConflict logs a non-strict length disagreement resolved during a
// merge. kept is the length the merge resolved to.
func (l *Logger) LogLengthConflict(sequence string, left, right, kept int) {
	l.Warn("sequence lengths differ, using first dictionary's length",
		"sequence", sequence,
		"length1", left,
		"length2", right,
		"using", kept,
	)
}
