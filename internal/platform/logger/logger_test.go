// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/study-tracker/internal/config"
	"github.com/phrazzld/study-tracker/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	l := logger.New(buf, "warn")

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "value", entries[0]["key"])
}

func TestNew_InvalidLevelWarns(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	l := logger.New(buf, "loud")

	l.Debug("hidden")
	l.Info("shown")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "invalid log level configured, using default level", entries[0]["msg"])
	assert.Equal(t, "loud", entries[0]["configured_level"])
	assert.Equal(t, "shown", entries[1]["msg"])
}

func TestSetup_SetsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: "debug"})

	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default())
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestFromContext(t *testing.T) {
	_, fallback := logger.SetupTestLogger(t)
	scoped := slog.New(slog.NewTextHandler(&logger.TestLogBuffer{}, nil))

	ctx := logger.WithLogger(context.Background(), scoped)

	assert.Same(t, scoped, logger.FromContext(ctx))
	assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, fallback, logger.FromContext(context.Background()), "default logger is the fallback")
}
