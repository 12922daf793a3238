package matcher

import (
	"regexp"

	"github.com/hellenic-development/token-bundler/pkg/token"
)

// RefMatch pairs one source-code reference with the project token it resolved
// to.
type RefMatch struct {
	Ref        string // the reference as it appears in source, e.g. "--color-primary-500"
	Token      *token.Token
	Confidence float64
}

// refPattern matches CSS variable references and bare custom-property names
// as they appear in generated component source: var(--name) or --name.
var refPattern = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)\s*\)|--[A-Za-z0-9_-]+`)

// ExtractRefs scans generated source text for candidate style-variable
// references and returns them deduplicated, in order of first appearance.
// The var(...) wrapper is stripped; the leading "--" is kept.
func ExtractRefs(source string) []string {
	seen := make(map[string]bool)
	var refs []string

	for _, m := range refPattern.FindAllStringSubmatch(source, -1) {
		ref := m[0]
		if m[1] != "" {
			ref = m[1]
		}
		if !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}

	return refs
}

// MatchRefs matches extracted source references against the project token set
// using the same scoring tiers as variable matching, reporting matched and
// unmatched references separately. An unmatched reference is a diagnostic for
// the caller, never an error.
func (m *Matcher) MatchRefs(refs []string, tokens []token.Token) (matched []RefMatch, unmatched []string) {
	for _, ref := range refs {
		normRef := m.normalize(ref)

		var best *token.Token
		bestConf := 0.0
		for i := range tokens {
			conf := score(normRef, m.normalize(tokens[i].Name))
			if conf > bestConf {
				best = &tokens[i]
				bestConf = conf
			}
		}

		if best == nil {
			unmatched = append(unmatched, ref)
			continue
		}
		matched = append(matched, RefMatch{Ref: ref, Token: best, Confidence: bestConf})
	}

	return matched, unmatched
}
