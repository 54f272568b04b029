package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/flashcards/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	saved := slog.Default()
	defer slog.SetDefault(saved)

	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "info", Format: "json"}, &buf, "abc-123")
	log.Info("cards imported", "count", 3)
	log.Debug("suppressed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "cards imported", rec["msg"])
	assert.Equal(t, "abc-123", rec["session"])
	assert.Equal(t, float64(3), rec["count"])
	assert.Same(t, log, slog.Default())
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	saved := slog.Default()
	defer slog.SetDefault(saved)

	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "warn", Format: "text"}, &buf, "")
	log.Info("hidden")
	log.Warn("shown", "path", "cards.txt")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "path=cards.txt")
	assert.NotContains(t, out, "session=")
}
