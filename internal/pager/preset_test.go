package pager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempPreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pager.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPreset_Success(t *testing.T) {
	path := writeTempPreset(t, `
per_page: 10
around_active: 1
before_separator: 1
separator: "…"
previous_text: "«"
next_text: "»"
screen_reader: false
page_prefix: "p"
pattern: "/items/{page}"
placeholder: "{page}"
retain_query_string: true
fragment: "list"
navigation_id: "catalog-pages"
size: sm
align: center
`)

	ps, err := LoadPreset(path)
	require.NoError(t, err)

	p := ps.Apply(New(Request{Page: 5}).Total(100))
	require.Equal(t, 10, p.ItemsPerPage())
	require.Equal(t, 10, p.TotalPages())
	require.Equal(t, "/items/4#list", p.URL(4))

	w := p.Window()
	require.Equal(t, []string{"«", "p1", "…", "p4", "p5", "p6", "…", "p10", "»"}, labels(w))

	got := p.Render()
	assert.Contains(t, got, `<nav id="catalog-pages" class="pagination-sm" aria-label="Navigation">`)
	assert.Contains(t, got, `<ul class="pagination justify-content-center">`)
	assert.NotContains(t, got, "sr-only")
}

func TestLoadPreset_FileNotFound(t *testing.T) {
	_, err := LoadPreset("/nonexistent/pager.yaml")
	require.Error(t, err)
}

func TestParsePreset_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"bad size", "size: xl", ErrInvalidSize},
		{"bad align", "align: justify", ErrInvalidAlign},
		{"zero per page", "per_page: 0", ErrInvalidPerPage},
		{"empty pattern", `pattern: ""`, ErrEmptyPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePreset([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := ParsePreset([]byte("per_page: [1, 2"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode preset")
}

func TestPreset_ApplyPartial(t *testing.T) {
	ps, err := ParsePreset([]byte("hide_next: true\nhide_separator: true\n"))
	require.NoError(t, err)

	base := New(Request{Page: 25}).Total(1000)
	p := ps.Apply(base)

	w := p.Window()
	require.NotContains(t, roles(w), RoleNext)
	require.NotContains(t, roles(w), RoleSeparator)
	require.Equal(t, base.URL(3), p.URL(3))
	require.Equal(t, base.ItemsPerPage(), p.ItemsPerPage())

	var nilPreset *Preset
	require.Equal(t, base, nilPreset.Apply(base))
}

func TestLoadPreset_ShippedConfig(t *testing.T) {
	ps, err := LoadPreset(filepath.Join("..", "..", "config", "pager.yaml"))
	require.NoError(t, err)

	p := ps.Apply(New(Request{Page: 5})).Total(1000)
	got := p.Render()

	assert.Contains(t, got, `<nav id="catalog-pages" class="pagination-md" aria-label="Navigation">`)
	assert.Contains(t, got, `<ul class="pagination justify-content-center">`)
	assert.Contains(t, got, `href="?page=4#results"`)
	assert.Contains(t, got, "«")
	assert.Contains(t, got, "…")
}
