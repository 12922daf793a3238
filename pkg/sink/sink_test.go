package sink

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/token-bundler/pkg/bundler"
)

func testBundle(version string, minor, count int) *bundler.Bundle {
	return &bundler.Bundle{
		Type:       bundler.TypeGlobal,
		Version:    version,
		Major:      1,
		Minor:      minor,
		Patch:      42,
		Stylesheet: ":root {\n  --a: 1;\n}\n",
		AliasMap:   "{}\n",
		TokenCount: count,
		CreatedAt:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func TestDirSink_StoreAndPrevious(t *testing.T) {
	s := NewDirSink(t.TempDir())
	key := Key{Project: "Acme Web", Type: bundler.TypeGlobal}

	// Nothing stored yet.
	prev, err := s.Previous(key)
	require.NoError(t, err)
	assert.Nil(t, prev)

	stored, err := s.Store(key, testBundle("1.0.42", 0, 3))
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.FileExists(t, stored.StylesheetPath)
	assert.FileExists(t, stored.AliasMapPath)
	assert.Contains(t, stored.StylesheetPath, "acme-web")

	prev, err = s.Previous(key)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, 3, prev.TokenCount)
	assert.Equal(t, 0, prev.Minor)
}

func TestDirSink_StoreSupersedes(t *testing.T) {
	s := NewDirSink(t.TempDir())
	key := Key{Project: "acme", Type: bundler.TypeGlobal}

	first, err := s.Store(key, testBundle("1.0.42", 0, 3))
	require.NoError(t, err)
	second, err := s.Store(key, testBundle("1.1.43", 1, 4))
	require.NoError(t, err)

	// The superseded artifacts are gone; the new ones exist.
	assert.NoFileExists(t, first.StylesheetPath)
	assert.FileExists(t, second.StylesheetPath)

	prev, err := s.Previous(key)
	require.NoError(t, err)
	assert.Equal(t, 4, prev.TokenCount)
	assert.Equal(t, 1, prev.Minor)
}

func TestDirSink_ComponentKeysAreIndependent(t *testing.T) {
	s := NewDirSink(t.TempDir())

	global := Key{Project: "acme", Type: bundler.TypeGlobal}
	card := Key{Project: "acme", Type: bundler.TypeComponent, Component: "Card"}

	_, err := s.Store(global, testBundle("1.0.42", 0, 3))
	require.NoError(t, err)

	componentBundle := &bundler.Bundle{
		Type:       bundler.TypeComponent,
		Component:  "Card",
		Version:    "1.0.42",
		Major:      1,
		AliasMap:   "{}\n",
		TokenCount: 2,
	}
	stored, err := s.Store(card, componentBundle)
	require.NoError(t, err)
	// Component bundles carry no style sheet.
	assert.Empty(t, stored.StylesheetPath)
	assert.FileExists(t, stored.AliasMapPath)

	prev, err := s.Previous(card)
	require.NoError(t, err)
	assert.Equal(t, 2, prev.TokenCount)

	prevGlobal, err := s.Previous(global)
	require.NoError(t, err)
	assert.Equal(t, 3, prevGlobal.TokenCount)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "acme-web", sanitize("Acme Web"))
	assert.Equal(t, "card", sanitize("Card"))
	assert.Equal(t, "default", sanitize("!!!"))
}

func TestDirSink_PreviousWithCorruptMetadata(t *testing.T) {
	s := NewDirSink(t.TempDir())
	key := Key{Project: "acme", Type: bundler.TypeGlobal}

	dir := s.keyDir(key)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(dir+"/current.json", []byte("{broken"), 0644))

	_, err := s.Previous(key)
	assert.Error(t, err)
}
