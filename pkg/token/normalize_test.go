package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "path-separated token name", in: "Color/Primary/500", want: "color-primary-500"},
		{name: "dot-separated token name", in: "spacing.lg", want: "spacing-lg"},
		{name: "spaces collapse to hyphen", in: "Brand  Blue", want: "brand-blue"},
		{name: "mixed separators", in: "Color/Primary Light.100", want: "color-primary-light-100"},
		{name: "already normalized", in: "color-primary-500", want: "color-primary-500"},
		{name: "disallowed characters stripped", in: "shadow(md)!", want: "shadowmd"},
		{name: "underscores stripped", in: "text_muted", want: "textmuted"},
		{name: "repeated hyphens collapse", in: "a--b---c", want: "a-b-c"},
		{name: "leading and trailing separators trimmed", in: "/Color/Primary/", want: "color-primary"},
		{name: "empty string", in: "", want: ""},
		{name: "pure whitespace", in: "   \t\n", want: ""},
		{name: "only disallowed characters", in: "!@#$%", want: ""},
		{name: "unicode stripped", in: "größe/md", want: "gre-md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "Normalize must be idempotent")
		})
	}
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"color", "primary", "500"}, Segments("color-primary-500"))
	assert.Nil(t, Segments(""))
	assert.Equal(t, []string{"lg"}, Segments("lg"))
}

func TestTokenVariableAndReference(t *testing.T) {
	tok := Token{Name: "Color/Primary/500", Type: TypeColor, Value: "#3366ff"}
	assert.Equal(t, "--color-primary-500", tok.VariableName())
	assert.Equal(t, "var(--color-primary-500)", tok.Reference())
}

func TestTokenValueForMode(t *testing.T) {
	tok := Token{
		Name:  "Color/Surface",
		Value: "#ffffff",
		ModeValues: map[string]string{
			"dark": "#111111",
		},
	}

	v, ok := tok.ValueForMode("dark")
	assert.True(t, ok)
	assert.Equal(t, "#111111", v)

	// Declares overrides but not for this mode.
	_, ok = tok.ValueForMode("high-contrast")
	assert.False(t, ok)

	// No overrides at all: base value resolves in every mode.
	plain := Token{Name: "spacing.lg", Value: "1.5rem"}
	v, ok = plain.ValueForMode("dark")
	assert.True(t, ok)
	assert.Equal(t, "1.5rem", v)
}

func TestParseType(t *testing.T) {
	assert.Equal(t, TypeColor, ParseType("color"))
	assert.Equal(t, TypeColor, ParseType("COLOR"))
	assert.Equal(t, TypeRadius, ParseType("Radius"))
	assert.Equal(t, TypeUnknown, ParseType("gradient"))
	assert.Equal(t, TypeUnknown, ParseType(""))
}
