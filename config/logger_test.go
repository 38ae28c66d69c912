package config

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"", false, true, true},
		{"debug", true, true, true},
		{"WARN", false, false, true},
		{"error", false, false, false},
		{"bogus", false, true, true},
	}
	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			t.Setenv("GO_ENV", "test")
			t.Setenv("LOG_LEVEL", tt.level)

			h := NewLogger().Handler()
			ctx := context.Background()
			assert.Equal(t, tt.wantDebug, h.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, h.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tt.wantWarn, h.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "production", "").Info("listening", "port", "8080")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "listening", rec["msg"])
	assert.Equal(t, "pagewindow", rec["app"])
	assert.Equal(t, "production", rec["env"])
	assert.Equal(t, "8080", rec["port"])
}

func TestNewLogger_DevelopmentWritesText(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "development", "debug").Debug("hello")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "env=development")
}
