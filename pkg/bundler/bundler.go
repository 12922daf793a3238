// Package bundler compiles a project's active token set into versioned style
// bundles: a CSS custom-property sheet grouped by token category and a JSON
// alias map from original token names to variable references.
package bundler

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hellenic-development/token-bundler/pkg/matcher"
	"github.com/hellenic-development/token-bundler/pkg/token"
)

// ErrNoTokens is returned when a global compilation is requested with an
// empty token list. An empty global bundle would be indistinguishable from a
// successful zero-token compilation and would mask an upstream configuration
// problem, so this is surfaced as a failure instead.
var ErrNoTokens = errors.New("no active tokens to compile")

// Type distinguishes project-wide bundles from component-scoped ones.
type Type string

const (
	// TypeGlobal is a bundle compiled from a project's full active token set.
	TypeGlobal Type = "global"
	// TypeComponent is a bundle scoped to the token references of one
	// generated component.
	TypeComponent Type = "component"
)

// Bundle is one compiled artifact. Exactly one current bundle exists per
// (project, type, component) key; a new compilation supersedes the previous
// one, and retention of prior versions is a storage concern.
type Bundle struct {
	Type       Type      `json:"type"`
	Component  string    `json:"component,omitempty"`
	Version    string    `json:"version"`
	Major      int       `json:"major"`
	Minor      int       `json:"minor"`
	Patch      int       `json:"patch"`
	Stylesheet string    `json:"-"`
	AliasMap   string    `json:"-"`
	TokenCount int       `json:"tokenCount"`
	Modes      []string  `json:"modes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ComponentResult is the outcome of a component-scoped compilation: the
// bundle plus the source references that resolved to no token. Unmatched
// references are diagnostics; they never abort compilation.
type ComponentResult struct {
	Bundle        *Bundle
	UnmatchedRefs []string
}

// Compiler compiles token sets into bundles. The zero value is usable and
// compiles with mode-fallback blocks enabled and the wall clock.
type Compiler struct {
	// Clock supplies the compilation timestamp; nil means time.Now. The
	// patch version component derives from it.
	Clock func() time.Time

	// DisableModeFallback suppresses the trailing default block that
	// duplicates every token's base value after mode-scoped blocks. The
	// default block is a compatibility shim for consumers unaware of modes
	// and is emitted unless explicitly disabled.
	DisableModeFallback bool

	// Matcher resolves component source references; nil means a fresh one
	// per component compilation.
	Matcher *matcher.Matcher
}

func (c *Compiler) now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}
	return time.Now()
}

func (c *Compiler) matcher() *matcher.Matcher {
	if c.Matcher != nil {
		return c.Matcher
	}
	return matcher.New()
}

// CompileGlobal compiles the project's full active token list into one
// bundle. The previous bundle for the same key, if any, drives version
// computation; pass nil for a first compilation.
func (c *Compiler) CompileGlobal(tokens []token.Token, previous *Bundle) (*Bundle, error) {
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}

	modes := collectModes(tokens)
	sheet, rendered := renderStylesheet(tokens, modes, !c.DisableModeFallback)

	aliases, err := renderAliasMap(tokens)
	if err != nil {
		return nil, fmt.Errorf("render alias map: %w", err)
	}

	now := c.now()
	major, minor, patch := computeVersion(previous, rendered, now)

	return &Bundle{
		Type:       TypeGlobal,
		Version:    fmt.Sprintf("%d.%d.%d", major, minor, patch),
		Major:      major,
		Minor:      minor,
		Patch:      patch,
		Stylesheet: sheet,
		AliasMap:   aliases,
		TokenCount: rendered,
		Modes:      modes,
		CreatedAt:  now,
	}, nil
}

// CompileComponent compiles a component-scoped bundle from one component's
// generated source text: candidate references are extracted from the source,
// resolved against the token list, and only the matched tokens appear in the
// JSON alias map. Component bundles carry no style sheet.
func (c *Compiler) CompileComponent(source, component string, tokens []token.Token, previous *Bundle) (*ComponentResult, error) {
	refs := matcher.ExtractRefs(source)
	matched, unmatched := c.matcher().MatchRefs(refs, tokens)

	// Distinct tokens, preserving match order.
	seen := make(map[string]bool, len(matched))
	var matchedTokens []token.Token
	for _, rm := range matched {
		if !seen[rm.Token.Name] {
			seen[rm.Token.Name] = true
			matchedTokens = append(matchedTokens, *rm.Token)
		}
	}

	aliases, err := renderAliasMap(matchedTokens)
	if err != nil {
		return nil, fmt.Errorf("render alias map: %w", err)
	}

	now := c.now()
	major, minor, patch := computeVersion(previous, len(matchedTokens), now)

	return &ComponentResult{
		Bundle: &Bundle{
			Type:       TypeComponent,
			Component:  component,
			Version:    fmt.Sprintf("%d.%d.%d", major, minor, patch),
			Major:      major,
			Minor:      minor,
			Patch:      patch,
			AliasMap:   aliases,
			TokenCount: len(matchedTokens),
			CreatedAt:  now,
		},
		UnmatchedRefs: unmatched,
	}, nil
}

// computeVersion decides the next semantic version. Major is fixed at 1
// (schema-breaking changes are out of scope here). Minor increments exactly
// when the rendered token count exceeds the previous bundle's recorded count
// and otherwise carries over, so it never decreases across successive
// compilations of the same key. Patch is a coarse time-derived counter used
// purely for cache-busting.
func computeVersion(previous *Bundle, tokenCount int, now time.Time) (major, minor, patch int) {
	major = 1
	if previous != nil {
		minor = previous.Minor
		if tokenCount > previous.TokenCount {
			minor++
		}
	}
	patch = int(now.UTC().Unix() % 100000)
	return major, minor, patch
}

// collectModes returns the sorted distinct mode names declared across the
// token set.
func collectModes(tokens []token.Token) []string {
	seen := make(map[string]bool)
	var modes []string
	for _, t := range tokens {
		for _, m := range t.DeclaredModes() {
			if !seen[m] {
				seen[m] = true
				modes = append(modes, m)
			}
		}
	}
	sort.Strings(modes)
	return modes
}

// categoryLabels maps token categories to their style-sheet heading comments.
var categoryLabels = map[token.Type]string{
	token.TypeColor:      "Color",
	token.TypeTypography: "Typography",
	token.TypeSpacing:    "Spacing",
	token.TypeSizing:     "Sizing",
	token.TypeRadius:     "Radius",
	token.TypeShadow:     "Shadow",
	token.TypeBlur:       "Blur",
	token.TypeUnknown:    "Other",
}

// renderStylesheet emits the bundle's CSS text and returns it together with
// the number of distinct tokens actually rendered. With more than one mode
// present, one block per mode is emitted (selector keyed by mode name)
// followed, when the fallback is enabled, by a default block carrying every
// token's base value so non-mode-aware consumers still resolve every
// variable. With at most one mode, a single default block is emitted.
func renderStylesheet(tokens []token.Token, modes []string, modeFallback bool) (string, int) {
	var sb strings.Builder

	rendered := make(map[string]bool)

	if len(modes) > 1 {
		for _, mode := range modes {
			var modeTokens []token.Token
			for _, t := range tokens {
				if _, ok := t.ValueForMode(mode); ok {
					modeTokens = append(modeTokens, t)
				}
			}
			renderBlock(&sb, fmt.Sprintf("[data-theme=%q]", mode), modeTokens, mode, rendered)
		}
		if modeFallback {
			renderBlock(&sb, ":root", tokens, "", rendered)
		}
	} else {
		renderBlock(&sb, ":root", tokens, "", rendered)
	}

	return sb.String(), len(rendered)
}

// categoryOf buckets a token into a known category, treating anything
// unrecognized (including an unset type) as unknown.
func categoryOf(t token.Token) token.Type {
	if _, ok := categoryLabels[t.Type]; ok {
		return t.Type
	}
	return token.TypeUnknown
}

// renderBlock writes one selector block grouping the given tokens by
// category in the fixed category order, with a heading comment per non-empty
// category. mode selects per-mode values; empty mode renders base values.
// Every token written is recorded in rendered by normalized name.
func renderBlock(sb *strings.Builder, selector string, tokens []token.Token, mode string, rendered map[string]bool) {
	sb.WriteString(selector)
	sb.WriteString(" {\n")

	for _, category := range token.CategoryOrder {
		wroteHeading := false
		for _, t := range tokens {
			if categoryOf(t) != category {
				continue
			}

			value := t.Value
			if mode != "" {
				v, ok := t.ValueForMode(mode)
				if !ok {
					continue
				}
				value = v
			}

			if !wroteHeading {
				fmt.Fprintf(sb, "  /* %s */\n", categoryLabels[category])
				wroteHeading = true
			}
			fmt.Fprintf(sb, "  %s: %s;\n", t.VariableName(), value)
			rendered[token.Normalize(t.Name)] = true
		}
	}

	sb.WriteString("}\n")
}

// renderAliasMap emits the JSON document mapping every token's original name
// to its CSS variable reference. encoding/json sorts map keys, which keeps
// the output stable across runs.
func renderAliasMap(tokens []token.Token) (string, error) {
	aliases := make(map[string]string, len(tokens))
	for _, t := range tokens {
		aliases[t.Name] = t.Reference()
	}

	out, err := json.MarshalIndent(aliases, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
