package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger carries pxm-manifest diagnostics. It never writes to stdout,
// which is reserved for the manifest itself.
type Logger struct {
	zerolog.Logger
}

// LoggerOptions contains options for creating a logger
type LoggerOptions struct {
	Level   string // debug, info, warn, error or off
	Format  string // "pretty" (default) or "json"
	Output  io.Writer
	Verbose bool // forces debug
}

// NewLogger creates a logger writing to opts.Output, or stderr
func NewLogger(opts LoggerOptions) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level := levelFor(opts.Level)
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{Logger: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// levelFor maps a config level name to zerolog; unknown names mean warn
func levelFor(name string) zerolog.Level {
	if name == "off" {
		return zerolog.Disabled
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.WarnLevel
	}
	return level
}

// WithComponent returns a logger tagged with the emitting package
func (l *Logger) WithComponent(component string) *Logger {
	return l.with("component", component)
}

// WithPath returns a logger tagged with a file path
func (l *Logger) WithPath(path string) *Logger {
	return l.with("path", path)
}

func (l *Logger) with(key, value string) *Logger {
	return &Logger{Logger: l.Logger.With().Str(key, value).Logger()}
}
