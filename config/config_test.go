package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	// production skips the .env lookup so tests only see what they set.
	t.Setenv("GO_ENV", "production")
	for _, k := range []string{"PORT", "DATABASE_URL", "PAGER_PRESET", "PAGE_SIZE_DEFAULT", "PAGE_SIZE_MAX", "REQUEST_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Contains(t, cfg.DBUrl, "localhost:5432/pagewindow")
	assert.Empty(t, cfg.PagerPreset)
	assert.Equal(t, 20, cfg.PageSizeDefault)
	assert.Equal(t, 100, cfg.PageSizeMax)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	setEnv(t, map[string]string{
		"PORT":              "9000",
		"DATABASE_URL":      "postgres://u:p@db:5432/x",
		"PAGER_PRESET":      "config/pager.yaml",
		"PAGE_SIZE_DEFAULT": "10",
		"PAGE_SIZE_MAX":     "50",
		"REQUEST_TIMEOUT":   "2s",

		"CORS_ALLOWED_ORIGINS": "https://shop.example",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DBUrl)
	assert.Equal(t, "config/pager.yaml", cfg.PagerPreset)
	assert.Equal(t, 10, cfg.PageSizeDefault)
	assert.Equal(t, 50, cfg.PageSizeMax)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "https://shop.example", cfg.CORSAllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non numeric page size", map[string]string{"PAGE_SIZE_DEFAULT": "ten"}},
		{"zero page size", map[string]string{"PAGE_SIZE_DEFAULT": "0"}},
		{"max below default", map[string]string{"PAGE_SIZE_DEFAULT": "30", "PAGE_SIZE_MAX": "20"}},
		{"bad timeout", map[string]string{"REQUEST_TIMEOUT": "soon"}},
		{"negative timeout", map[string]string{"REQUEST_TIMEOUT": "-1s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
