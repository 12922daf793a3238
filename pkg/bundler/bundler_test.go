package bundler

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/token-bundler/pkg/token"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

var basicTokens = []token.Token{
	{Name: "Color/Primary/500", Type: token.TypeColor, Value: "#3366ff"},
	{Name: "spacing.lg", Type: token.TypeSpacing, Value: "1.5rem"},
}

func TestCompileGlobal_Basic(t *testing.T) {
	c := &Compiler{Clock: fixedClock}
	b, err := c.CompileGlobal(basicTokens, nil)
	require.NoError(t, err)

	assert.Equal(t, TypeGlobal, b.Type)
	assert.Equal(t, 2, b.TokenCount)
	assert.Contains(t, b.Stylesheet, "--color-primary-500: #3366ff;")
	assert.Contains(t, b.Stylesheet, "--spacing-lg: 1.5rem;")
	assert.Contains(t, b.Stylesheet, "/* Color */")
	assert.Contains(t, b.Stylesheet, "/* Spacing */")
	assert.True(t, strings.HasPrefix(b.Stylesheet, ":root {\n"))

	var aliases map[string]string
	require.NoError(t, json.Unmarshal([]byte(b.AliasMap), &aliases))
	assert.Equal(t, map[string]string{
		"Color/Primary/500": "var(--color-primary-500)",
		"spacing.lg":        "var(--spacing-lg)",
	}, aliases)
}

func TestCompileGlobal_CategoryOrder(t *testing.T) {
	tokens := []token.Token{
		{Name: "radius.md", Type: token.TypeRadius, Value: "8px"},
		{Name: "Color/Primary", Type: token.TypeColor, Value: "#3366ff"},
		{Name: "shadow.card", Type: token.TypeShadow, Value: "0px 4px 8px 0px rgba(0, 0, 0, 0.25)"},
	}

	c := &Compiler{Clock: fixedClock}
	b, err := c.CompileGlobal(tokens, nil)
	require.NoError(t, err)

	colorIdx := strings.Index(b.Stylesheet, "/* Color */")
	radiusIdx := strings.Index(b.Stylesheet, "/* Radius */")
	shadowIdx := strings.Index(b.Stylesheet, "/* Shadow */")
	require.NotEqual(t, -1, colorIdx)
	require.NotEqual(t, -1, radiusIdx)
	require.NotEqual(t, -1, shadowIdx)
	assert.Less(t, colorIdx, radiusIdx)
	assert.Less(t, radiusIdx, shadowIdx)

	// Empty categories emit no heading.
	assert.NotContains(t, b.Stylesheet, "/* Typography */")
}

func TestCompileGlobal_EmptyTokenList(t *testing.T) {
	c := &Compiler{Clock: fixedClock}
	_, err := c.CompileGlobal(nil, nil)
	assert.ErrorIs(t, err, ErrNoTokens)
}

func TestCompileGlobal_Idempotent(t *testing.T) {
	c := &Compiler{Clock: fixedClock}

	first, err := c.CompileGlobal(basicTokens, nil)
	require.NoError(t, err)
	second, err := c.CompileGlobal(basicTokens, first)
	require.NoError(t, err)

	assert.Equal(t, first.Stylesheet, second.Stylesheet)
	assert.Equal(t, first.AliasMap, second.AliasMap)
	assert.Equal(t, first.Minor, second.Minor, "unchanged token set must not bump minor")
}

func TestCompileGlobal_Versioning(t *testing.T) {
	c := &Compiler{Clock: fixedClock}

	first, err := c.CompileGlobal(basicTokens, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Major)
	assert.Equal(t, 0, first.Minor)

	grown := append([]token.Token{}, basicTokens...)
	grown = append(grown, token.Token{Name: "radius.md", Type: token.TypeRadius, Value: "8px"})

	second, err := c.CompileGlobal(grown, first)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Major)
	assert.Equal(t, first.Minor+1, second.Minor, "count growth bumps minor by exactly 1")

	// Shrinking the set never decreases minor.
	third, err := c.CompileGlobal(basicTokens, second)
	require.NoError(t, err)
	assert.Equal(t, second.Minor, third.Minor)

	// Value-only changes do not bump minor.
	changed := append([]token.Token{}, basicTokens...)
	changed[0].Value = "#112233"
	fourth, err := c.CompileGlobal(changed, third)
	require.NoError(t, err)
	assert.Equal(t, third.Minor, fourth.Minor)
}

func TestCompileGlobal_Modes(t *testing.T) {
	tokens := []token.Token{
		{
			Name:  "Color/Surface",
			Type:  token.TypeColor,
			Value: "#ffffff",
			ModeValues: map[string]string{
				"light": "#ffffff",
				"dark":  "#111111",
			},
		},
		{Name: "spacing.lg", Type: token.TypeSpacing, Value: "1.5rem"},
	}

	c := &Compiler{Clock: fixedClock}
	b, err := c.CompileGlobal(tokens, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"dark", "light"}, b.Modes)

	assert.Contains(t, b.Stylesheet, `[data-theme="dark"] {`)
	assert.Contains(t, b.Stylesheet, `[data-theme="light"] {`)
	assert.Contains(t, b.Stylesheet, "--color-surface: #111111;")

	// Mode-less tokens resolve in every mode block.
	darkBlock := blockFor(t, b.Stylesheet, `[data-theme="dark"]`)
	assert.Contains(t, darkBlock, "--spacing-lg: 1.5rem;")

	// Trailing default block carries every token's base value.
	rootBlock := blockFor(t, b.Stylesheet, ":root")
	assert.Contains(t, rootBlock, "--color-surface: #ffffff;")
	assert.Contains(t, rootBlock, "--spacing-lg: 1.5rem;")

	assert.Equal(t, 2, b.TokenCount)
}

func TestCompileGlobal_ModeFallbackDisabled(t *testing.T) {
	tokens := []token.Token{
		{
			Name:  "Color/Surface",
			Type:  token.TypeColor,
			Value: "#ffffff",
			ModeValues: map[string]string{
				"light": "#ffffff",
				"dark":  "#111111",
			},
		},
	}

	c := &Compiler{Clock: fixedClock, DisableModeFallback: true}
	b, err := c.CompileGlobal(tokens, nil)
	require.NoError(t, err)

	assert.NotContains(t, b.Stylesheet, ":root")
	assert.Contains(t, b.Stylesheet, `[data-theme="dark"] {`)
	assert.Equal(t, 1, b.TokenCount)
}

func TestCompileGlobal_SingleModeEmitsDefaultOnly(t *testing.T) {
	tokens := []token.Token{
		{Name: "Color/Surface", Type: token.TypeColor, Value: "#ffffff", ModeValues: map[string]string{"light": "#fafafa"}},
	}

	c := &Compiler{Clock: fixedClock}
	b, err := c.CompileGlobal(tokens, nil)
	require.NoError(t, err)

	assert.NotContains(t, b.Stylesheet, "[data-theme=")
	assert.True(t, strings.HasPrefix(b.Stylesheet, ":root {\n"))
}

func TestCompileComponent(t *testing.T) {
	source := `
export const Card = styled.div` + "`" + `
  background: var(--color-primary-500);
  padding: var(--spacing-lg);
  outline: var(--focus-ring);
` + "`" + `;
`

	c := &Compiler{Clock: fixedClock}
	res, err := c.CompileComponent(source, "Card", basicTokens, nil)
	require.NoError(t, err)

	b := res.Bundle
	assert.Equal(t, TypeComponent, b.Type)
	assert.Equal(t, "Card", b.Component)
	assert.Empty(t, b.Stylesheet, "component bundles carry no style sheet")
	assert.Equal(t, 2, b.TokenCount)

	var aliases map[string]string
	require.NoError(t, json.Unmarshal([]byte(b.AliasMap), &aliases))
	assert.Equal(t, map[string]string{
		"Color/Primary/500": "var(--color-primary-500)",
		"spacing.lg":        "var(--spacing-lg)",
	}, aliases)

	assert.Equal(t, []string{"--focus-ring"}, res.UnmatchedRefs)
}

func TestCompileComponent_NoRefs(t *testing.T) {
	c := &Compiler{Clock: fixedClock}
	res, err := c.CompileComponent("const x = 1;", "Empty", basicTokens, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Bundle.TokenCount)
	assert.Empty(t, res.UnmatchedRefs)
	assert.Equal(t, "{}\n", res.Bundle.AliasMap)
}

func TestComputeVersion_PatchFromClock(t *testing.T) {
	_, _, patch := computeVersion(nil, 1, fixedTime)
	assert.Equal(t, int(fixedTime.Unix()%100000), patch)
}

// blockFor extracts the body of the first block opened by the given selector.
func blockFor(t *testing.T, sheet, selector string) string {
	t.Helper()
	idx := strings.Index(sheet, selector+" {")
	require.NotEqual(t, -1, idx, "selector %q not found", selector)
	rest := sheet[idx:]
	end := strings.Index(rest, "}")
	require.NotEqual(t, -1, end)
	return rest[:end]
}
