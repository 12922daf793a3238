// Package token defines the project's canonical design-token model, the
// token-name normalizer shared by the matcher and the bundle compiler, and
// loading of token files from disk.
package token

// Type is a token's canonical category.
type Type string

// Token categories, in the fixed order bundles group them.
const (
	TypeColor      Type = "color"
	TypeTypography Type = "typography"
	TypeSpacing    Type = "spacing"
	TypeSizing     Type = "sizing"
	TypeRadius     Type = "radius"
	TypeShadow     Type = "shadow"
	TypeBlur       Type = "blur"
	TypeUnknown    Type = "unknown"
)

// CategoryOrder is the stable order token categories appear in a compiled
// style sheet.
var CategoryOrder = []Type{
	TypeColor,
	TypeTypography,
	TypeSpacing,
	TypeSizing,
	TypeRadius,
	TypeShadow,
	TypeBlur,
	TypeUnknown,
}

// ParseType maps a free-form type string onto a canonical Type, falling back
// to TypeUnknown for anything unrecognized.
func ParseType(s string) Type {
	switch Type(Normalize(s)) {
	case TypeColor:
		return TypeColor
	case TypeTypography:
		return TypeTypography
	case TypeSpacing:
		return TypeSpacing
	case TypeSizing:
		return TypeSizing
	case TypeRadius:
		return TypeRadius
	case TypeShadow:
		return TypeShadow
	case TypeBlur:
		return TypeBlur
	default:
		return TypeUnknown
	}
}

// Token is one canonical design-token record: a free-form, author-supplied
// name, a canonical type, a default value, and optional per-mode overrides.
// The core treats the project's full active token list as an immutable input
// per compilation run.
type Token struct {
	Name       string            `json:"name" yaml:"name"`
	Type       Type              `json:"type" yaml:"type"`
	Value      string            `json:"value" yaml:"value"`
	ModeValues map[string]string `json:"modeValues,omitempty" yaml:"modeValues,omitempty"`
	Modes      []string          `json:"modes,omitempty" yaml:"modes,omitempty"`
}

// VariableName returns the token's CSS custom-property name,
// e.g. "--color-primary-500".
func (t Token) VariableName() string {
	return "--" + Normalize(t.Name)
}

// Reference returns the token's CSS variable reference,
// e.g. "var(--color-primary-500)".
func (t Token) Reference() string {
	return "var(" + t.VariableName() + ")"
}

// ValueForMode returns the token's value for the given mode and whether the
// token participates in that mode: a per-mode override wins, and a token
// declaring no overrides at all resolves to its base value in every mode.
// A token with overrides for other modes only does not participate.
func (t Token) ValueForMode(mode string) (string, bool) {
	if v, ok := t.ModeValues[mode]; ok {
		return v, true
	}
	if len(t.ModeValues) == 0 {
		return t.Value, true
	}
	return "", false
}

// DeclaredModes returns the set of mode names the token mentions, from both
// its explicit mode list and its per-mode value map.
func (t Token) DeclaredModes() []string {
	seen := make(map[string]bool)
	var modes []string
	for _, m := range t.Modes {
		if m != "" && !seen[m] {
			seen[m] = true
			modes = append(modes, m)
		}
	}
	for m := range t.ModeValues {
		if m != "" && !seen[m] {
			seen[m] = true
			modes = append(modes, m)
		}
	}
	return modes
}
