package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "info",
			Format: "json",
			Output: &buf,
		})
		require.NotNil(t, logger)
		logger.Info().Msg("test")
		assert.Contains(t, buf.String(), `"message":"test"`)
	})

	t.Run("pretty format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "info",
			Format: "pretty",
			Output: &buf,
		})
		logger.Info().Msg("test")
		assert.Contains(t, buf.String(), "test")
		assert.NotContains(t, buf.String(), `"message"`)
	})

	t.Run("verbose option", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:   "error",
			Format:  "json",
			Output:  &buf,
			Verbose: true,
		})
		logger.Debug().Msg("debug test")
		assert.Contains(t, buf.String(), "debug test")
	})
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Error().Msg("dropped") })
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	logger.WithComponent("sources").Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"sources"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestLoggerWithPath(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	logger.WithPath("/tmp/manifest.json").Info().Msg("written")

	assert.Contains(t, buf.String(), `"path":"/tmp/manifest.json"`)
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		logFunc   func(*Logger)
		shouldLog bool
	}{
		{"debug level logs debug", "debug", func(l *Logger) { l.Debug().Msg("debug") }, true},
		{"info level skips debug", "info", func(l *Logger) { l.Debug().Msg("debug") }, false},
		{"info level logs info", "info", func(l *Logger) { l.Info().Msg("info") }, true},
		{"warn level skips info", "warn", func(l *Logger) { l.Info().Msg("info") }, false},
		{"error level logs error", "error", func(l *Logger) { l.Error().Msg("error") }, true},
		{"off drops error", "off", func(l *Logger) { l.Error().Msg("error") }, false},
		{"unknown defaults to warn", "loud", func(l *Logger) { l.Warn().Msg("warn") }, true},
		{"unknown skips info", "loud", func(l *Logger) { l.Info().Msg("info") }, false},
		{"empty defaults to warn", "", func(l *Logger) { l.Info().Msg("info") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(LoggerOptions{
				Level:  tt.level,
				Format: "json",
				Output: &buf,
			})

			tt.logFunc(logger)

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
