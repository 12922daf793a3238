// Package matcher resolves design variables and source-code references to
// project tokens using layered name-similarity heuristics with confidence
// scoring.
package matcher

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hellenic-development/token-bundler/pkg/figma"
	"github.com/hellenic-development/token-bundler/pkg/token"
)

// Match pairs one design variable with at most one project token. Token is
// nil when no token qualifies, in which case Confidence is 0 and Reference is
// empty.
type Match struct {
	VariableID   string
	VariableName string
	Token        *token.Token
	Confidence   float64
	Reference    string // CSS variable reference, e.g. "var(--color-primary-500)"
}

// strategy scores the similarity of two normalized names in [0,1]. Strategies
// are pure functions so each tier can be tested independently.
type strategy func(a, b string) float64

// Scoring tiers in evaluation order: exact, containment, segment overlap.
var strategies = []strategy{exactScore, containmentScore, segmentScore}

// exactScore returns 1 when both normalized names are equal, else 0.
func exactScore(a, b string) float64 {
	if a != "" && a == b {
		return 1
	}
	return 0
}

// containmentScore returns the length ratio when one normalized name is a
// substring of the other, else 0.
func containmentScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if !strings.Contains(a, b) && !strings.Contains(b, a) {
		return 0
	}
	la, lb := float64(len(a)), float64(len(b))
	if la < lb {
		return la / lb
	}
	return lb / la
}

// segmentScore splits both names on hyphens and returns the intersection size
// over the larger segment count.
func segmentScore(a, b string) float64 {
	segsA := token.Segments(a)
	segsB := token.Segments(b)
	if len(segsA) == 0 || len(segsB) == 0 {
		return 0
	}

	set := make(map[string]bool, len(segsA))
	for _, s := range segsA {
		set[s] = true
	}

	shared := 0
	for _, s := range segsB {
		if set[s] {
			shared++
			delete(set, s) // count each segment once
		}
	}

	max := len(segsA)
	if len(segsB) > max {
		max = len(segsB)
	}
	return float64(shared) / float64(max)
}

// score returns the best confidence any tier assigns to the pair.
func score(a, b string) float64 {
	best := 0.0
	for _, s := range strategies {
		if v := s(a, b); v > best {
			best = v
		}
	}
	return best
}

// normalizeCacheSize bounds the memo of normalized names. Token lists are
// re-normalized once per variable during matching, so the memo pays for
// itself on any non-trivial project.
const normalizeCacheSize = 1024

// Matcher matches design variables and source references against a project's
// token set. The zero value is not usable; construct with New.
type Matcher struct {
	cache *lru.Cache[string, string]
}

// New creates a Matcher with an LRU-memoized normalizer.
func New() *Matcher {
	cache, _ := lru.New[string, string](normalizeCacheSize)
	return &Matcher{cache: cache}
}

func (m *Matcher) normalize(name string) string {
	if v, ok := m.cache.Get(name); ok {
		return v
	}
	v := token.Normalize(name)
	m.cache.Add(name, v)
	return v
}

// Match returns one Match per variable, preserving input order. For each
// variable the highest-confidence token wins; ties resolve to the earliest
// token in the input list. A variable no token qualifies for yields a Match
// with a nil Token and confidence 0, never an error.
func (m *Matcher) Match(variables []figma.Variable, tokens []token.Token) []Match {
	matches := make([]Match, 0, len(variables))

	for _, v := range variables {
		normVar := m.normalize(v.Name)

		best := Match{VariableID: v.ID, VariableName: v.Name}
		for i := range tokens {
			conf := score(normVar, m.normalize(tokens[i].Name))
			if conf > best.Confidence {
				best.Token = &tokens[i]
				best.Confidence = conf
			}
		}
		if best.Token != nil {
			best.Reference = best.Token.Reference()
		}

		matches = append(matches, best)
	}

	return matches
}
