package tokenbundler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/token-bundler/pkg/bundler"
)

func TestParseNodeIDs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single node ID",
			input:    "1:2",
			expected: []string{"1:2"},
		},
		{
			name:     "multiple node IDs",
			input:    "1:2,3:4,5:6",
			expected: []string{"1:2", "3:4", "5:6"},
		},
		{
			name:     "whitespace around IDs",
			input:    " 1:2 , 3:4 ",
			expected: []string{"1:2", "3:4"},
		},
		{
			name:     "empty entries dropped",
			input:    "1:2,,3:4,",
			expected: []string{"1:2", "3:4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNodeIDs(tt.input))
		})
	}
}

func writeTokensFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "design-tokens.json")
	content := `[
  {"name": "Color/Primary/500", "type": "color", "value": "#3366ff"},
  {"name": "Spacing/LG", "type": "spacing", "value": "1.5rem"}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCompileGlobal(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		Project:    "acme",
		TokensFile: writeTokensFile(t, dir),
		OutputDir:  filepath.Join(dir, "bundles"),
	}

	result, err := CompileGlobal(opts)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Bundle.TokenCount)
	assert.Equal(t, 1, result.Bundle.Major)
	assert.Equal(t, 0, result.Bundle.Minor)
	assert.FileExists(t, result.Stored.StylesheetPath)
	assert.FileExists(t, result.Stored.AliasMapPath)

	css, err := os.ReadFile(result.Stored.StylesheetPath)
	require.NoError(t, err)
	assert.Contains(t, string(css), "--color-primary-500: #3366ff;")
	assert.Contains(t, string(css), "--spacing-lg: 1.5rem;")
}

func TestCompileGlobal_NoTokens(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		Project:   "acme",
		TokensDir: dir, // nothing to discover
		OutputDir: filepath.Join(dir, "bundles"),
	}

	_, err := CompileGlobal(opts)
	assert.True(t, errors.Is(err, bundler.ErrNoTokens))
}

func TestCompileComponent(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "card.tsx")
	require.NoError(t, os.WriteFile(source, []byte(
		`const card = { color: "var(--color-primary-500)", outline: "var(--focus-ring)" };`,
	), 0644))

	opts := Options{
		Project:    "acme",
		TokensFile: writeTokensFile(t, dir),
		OutputDir:  filepath.Join(dir, "bundles"),
	}

	result, err := CompileComponent(opts, "Card", source)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Bundle.TokenCount)
	assert.Equal(t, []string{"--focus-ring"}, result.UnmatchedRefs)
	// Component bundles carry an alias map but no style sheet.
	assert.Empty(t, result.Stored.StylesheetPath)
	assert.FileExists(t, result.Stored.AliasMapPath)

	aliases, err := os.ReadFile(result.Stored.AliasMapPath)
	require.NoError(t, err)
	assert.Contains(t, string(aliases), `"Color/Primary/500": "var(--color-primary-500)"`)
}
