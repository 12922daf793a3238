package css

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hellenic-development/token-bundler/pkg/figma"
)

func TestEffects_Shadows(t *testing.T) {
	dropShadow := figma.Effect{
		Type:   "DROP_SHADOW",
		Offset: &figma.Vector{X: 0, Y: 4},
		Radius: 8,
		Spread: 2,
		Color:  &figma.Color{R: 0, G: 0, B: 0, A: 0.25},
	}
	innerShadow := figma.Effect{
		Type:   "INNER_SHADOW",
		Offset: &figma.Vector{X: 1, Y: 1},
		Radius: 2,
		Color:  &figma.Color{R: 0, G: 0, B: 0, A: 1},
	}

	t.Run("single drop shadow", func(t *testing.T) {
		got := Effects([]figma.Effect{dropShadow})
		assert.Equal(t, "0px 4px 8px 2px rgba(0, 0, 0, 0.25)", got.BoxShadow)
		assert.Empty(t, got.Filter)
		assert.Empty(t, got.BackdropFilter)
	})

	t.Run("inner shadow gets inset prefix", func(t *testing.T) {
		got := Effects([]figma.Effect{innerShadow})
		assert.Equal(t, "inset 1px 1px 2px 0px #000000", got.BoxShadow)
	})

	t.Run("multiple shadows join with comma", func(t *testing.T) {
		got := Effects([]figma.Effect{dropShadow, innerShadow})
		assert.Equal(t, "0px 4px 8px 2px rgba(0, 0, 0, 0.25), inset 1px 1px 2px 0px #000000", got.BoxShadow)
	})

	t.Run("invisible shadow contributes nothing", func(t *testing.T) {
		hidden := dropShadow
		hidden.Visible = boolPtr(false)
		got := Effects([]figma.Effect{hidden, innerShadow})
		assert.Equal(t, "inset 1px 1px 2px 0px #000000", got.BoxShadow)
	})

	t.Run("zero visible effects emit nothing", func(t *testing.T) {
		hidden := dropShadow
		hidden.Visible = boolPtr(false)
		got := Effects([]figma.Effect{hidden})
		assert.Empty(t, got.BoxShadow)
		assert.Empty(t, got.Filter)
		assert.Empty(t, got.BackdropFilter)
	})

	t.Run("shadow without offset or color degrades to defaults", func(t *testing.T) {
		got := Effects([]figma.Effect{{Type: "DROP_SHADOW", Radius: 4}})
		assert.Equal(t, "0px 0px 4px 0px rgba(0, 0, 0, 0.25)", got.BoxShadow)
	})
}

func TestEffects_Blurs(t *testing.T) {
	t.Run("layer blur", func(t *testing.T) {
		got := Effects([]figma.Effect{{Type: "LAYER_BLUR", Radius: 4}})
		assert.Equal(t, "blur(4px)", got.Filter)
		assert.Empty(t, got.BoxShadow)
	})

	t.Run("background blur", func(t *testing.T) {
		got := Effects([]figma.Effect{{Type: "BACKGROUND_BLUR", Radius: 12}})
		assert.Equal(t, "backdrop-blur(12px)", got.BackdropFilter)
	})

	t.Run("blurs of the same property join with space", func(t *testing.T) {
		got := Effects([]figma.Effect{
			{Type: "LAYER_BLUR", Radius: 4},
			{Type: "LAYER_BLUR", Radius: 8},
		})
		assert.Equal(t, "blur(4px) blur(8px)", got.Filter)
	})

	t.Run("unknown effect kind is skipped", func(t *testing.T) {
		got := Effects([]figma.Effect{{Type: "NOISE", Radius: 4}})
		assert.Equal(t, EffectStyles{}, got)
	})
}
