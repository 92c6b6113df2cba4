package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/statecore/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.New()
	cfg.LogLevel = "warn"

	logger, err := New(&buf, cfg)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "store", "todo")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN msg=shown store=todo")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.New()
	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"

	logger, err := New(&buf, cfg)
	require.NoError(t, err)
	logger.Debug("transition", "action", "add")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "transition", rec["msg"])
	assert.Equal(t, "add", rec["action"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	cfg := config.New()
	cfg.LogFormat = "xml"
	_, err := New(&bytes.Buffer{}, cfg)
	assert.Error(t, err)
}
