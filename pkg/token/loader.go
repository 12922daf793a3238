package token

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a token file: either a bare token list or a
// document with a top-level "tokens" key. JSON and YAML are both accepted.
type File struct {
	Tokens []Token `json:"tokens" yaml:"tokens"`
}

// discoverPatterns are the glob patterns used to locate token files when no
// explicit path is configured, matching the common naming conventions for
// design-token files.
var discoverPatterns = []string{
	"**/tokens.json",
	"**/*.tokens.json",
	"**/design-tokens.json",
	"**/tokens.yaml",
	"**/*.tokens.yaml",
	"**/design-tokens.yaml",
	"**/tokens.yml",
	"**/*.tokens.yml",
	"**/design-tokens.yml",
}

// LoadFile reads a token file (JSON or YAML, by extension) and returns its
// token list with types canonicalized. Unknown or absent types map to
// TypeUnknown rather than failing.
func LoadFile(path string) ([]Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var tokens []Token
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		tokens, err = decodeYAML(data)
	default:
		tokens, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse token file %q: %w", path, err)
	}

	for i := range tokens {
		tokens[i].Type = ParseType(string(tokens[i].Type))
	}

	return tokens, nil
}

func decodeJSON(data []byte) ([]Token, error) {
	var list []Token
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Tokens, nil
}

func decodeYAML(data []byte) ([]Token, error) {
	var list []Token
	if err := yaml.Unmarshal(data, &list); err == nil && list != nil {
		return list, nil
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Tokens, nil
}

// Discover walks root for files matching the common design-token naming
// conventions and returns their paths, sorted and deduplicated. Paths under
// node_modules and hidden directories are skipped.
func Discover(root string) ([]string, error) {
	fsys := os.DirFS(root)

	seen := make(map[string]bool)
	var found []string
	for _, pattern := range discoverPatterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if strings.Contains(m, "node_modules/") || strings.HasPrefix(m, ".") || strings.Contains(m, "/.") {
				continue
			}
			full := filepath.Join(root, filepath.FromSlash(m))
			if !seen[full] {
				seen[full] = true
				found = append(found, full)
			}
		}
	}

	sort.Strings(found)
	return found, nil
}

// LoadDir discovers and loads every token file under root, concatenating
// their token lists in path order.
func LoadDir(root string) ([]Token, error) {
	paths, err := Discover(root)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	for _, p := range paths {
		loaded, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, loaded...)
	}

	return tokens, nil
}
