// Package sink persists compiled bundles. It provides the storage-collaborator
// interface the compiler hands its output to, plus a local directory
// implementation that also serves the previous-bundle lookup the versioning
// policy needs.
package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hellenic-development/token-bundler/pkg/bundler"
)

// Key identifies one bundle slot. Exactly one current bundle exists per key;
// storing a new bundle supersedes the previous one.
type Key struct {
	Project   string
	Type      bundler.Type
	Component string // empty for global bundles
}

// StoredBundle describes where a bundle's artifacts ended up.
type StoredBundle struct {
	ID             string    `json:"id"`
	Version        string    `json:"version"`
	Major          int       `json:"major"`
	Minor          int       `json:"minor"`
	Patch          int       `json:"patch"`
	TokenCount     int       `json:"tokenCount"`
	Modes          []string  `json:"modes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	StylesheetPath string    `json:"stylesheetPath,omitempty"`
	AliasMapPath   string    `json:"aliasMapPath"`
}

// Sink persists compiled bundles and recalls the current one per key.
type Sink interface {
	// Store persists the bundle as the current one for key.
	Store(key Key, b *bundler.Bundle) (*StoredBundle, error)
	// Previous returns the current bundle record for key, or nil when none
	// has been stored yet.
	Previous(key Key) (*bundler.Bundle, error)
}

// DirSink stores bundle artifacts in a local directory tree:
// <root>/<project>/global/ for global bundles and
// <root>/<project>/components/<component>/ for component-scoped ones.
// Each slot holds the versioned css/json artifacts of the current bundle and
// a current.json metadata record.
type DirSink struct {
	Root string
}

// NewDirSink creates a sink rooted at dir.
func NewDirSink(dir string) *DirSink {
	return &DirSink{Root: dir}
}

const metadataFile = "current.json"

func (s *DirSink) keyDir(key Key) string {
	if key.Type == bundler.TypeComponent {
		return filepath.Join(s.Root, sanitize(key.Project), "components", sanitize(key.Component))
	}
	return filepath.Join(s.Root, sanitize(key.Project), "global")
}

// Store writes the bundle's artifacts and metadata, replacing whatever was
// current for the key before.
func (s *DirSink) Store(key Key, b *bundler.Bundle) (*StoredBundle, error) {
	dir := s.keyDir(key)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create bundle directory %q: %w", dir, err)
	}

	// Remove the superseded bundle's artifacts so exactly one current
	// version remains on disk.
	if err := removeArtifacts(dir); err != nil {
		return nil, err
	}

	base := fmt.Sprintf("%s-v%s", string(b.Type), b.Version)
	stored := &StoredBundle{
		ID:         uuid.NewString(),
		Version:    b.Version,
		Major:      b.Major,
		Minor:      b.Minor,
		Patch:      b.Patch,
		TokenCount: b.TokenCount,
		Modes:      b.Modes,
		CreatedAt:  b.CreatedAt,
	}

	if b.Stylesheet != "" {
		cssPath := filepath.Join(dir, base+".css")
		if err := os.WriteFile(cssPath, []byte(b.Stylesheet), 0644); err != nil {
			return nil, fmt.Errorf("failed to write stylesheet %q: %w", cssPath, err)
		}
		stored.StylesheetPath = cssPath
	}

	jsonPath := filepath.Join(dir, base+".json")
	if err := os.WriteFile(jsonPath, []byte(b.AliasMap), 0644); err != nil {
		return nil, fmt.Errorf("failed to write alias map %q: %w", jsonPath, err)
	}
	stored.AliasMapPath = jsonPath

	meta, err := json.MarshalIndent(metadata{Stored: stored, Bundle: b}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode bundle metadata: %w", err)
	}
	metaPath := filepath.Join(dir, metadataFile)
	if err := os.WriteFile(metaPath, meta, 0644); err != nil {
		return nil, fmt.Errorf("failed to write bundle metadata %q: %w", metaPath, err)
	}

	return stored, nil
}

// metadata is the on-disk record pairing storage info with the bundle fields
// version computation needs.
type metadata struct {
	Stored *StoredBundle   `json:"stored"`
	Bundle *bundler.Bundle `json:"bundle"`
}

// Previous reads the current bundle record for key. A key that has never been
// stored yields (nil, nil).
func (s *DirSink) Previous(key Key) (*bundler.Bundle, error) {
	data, err := os.ReadFile(filepath.Join(s.keyDir(key), metadataFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle metadata: %w", err)
	}

	var meta metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse bundle metadata: %w", err)
	}
	return meta.Bundle, nil
}

// removeArtifacts deletes versioned css/json artifacts from a bundle slot,
// leaving unrelated files alone.
func removeArtifacts(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list bundle directory %q: %w", dir, err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == metadataFile {
			continue
		}
		if strings.HasSuffix(name, ".css") || strings.HasSuffix(name, ".json") {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				return fmt.Errorf("failed to remove superseded artifact %q: %w", name, err)
			}
		}
	}
	return nil
}

// sanitize converts a project or component name into a safe directory name
// (lowercase with hyphens), falling back to "default" for names that
// sanitize away entirely.
func sanitize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	if result.Len() == 0 {
		return "default"
	}
	return result.String()
}
