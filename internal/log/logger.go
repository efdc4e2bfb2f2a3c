// Package log wraps log/slog with component-tagged loggers. Output goes to
// stderr so structured logs never mix with CLI output on stdout.
package log

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Logger is a slog.Logger tagged with a component name.
type Logger struct {
	*slog.Logger
	component string
	level     slog.Level
}

// New creates a component-tagged logger writing text records to stderr.
func New(level slog.Level, component string) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(handler).With("component", component),
		component: component,
		level:     level,
	}
}

// WithComponent returns a sibling logger under a different component name.
func (l *Logger) WithComponent(component string) *Logger {
	return New(l.level, component)
}

// Component returns the logger's component name.
func (l *Logger) Component() string { return l.component }

// Level returns the level the logger was built with.
func (l *Logger) Level() slog.Level { return l.level }

// ParseLevel maps a config string to a slog level. Unknown values fall back
// to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide fallback logger (info level, component
// "treasury").
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(slog.LevelInfo, "treasury")
	})
	return defaultLogger
}
