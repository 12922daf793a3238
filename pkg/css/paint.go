// Package css converts Figma paint and effect descriptions into CSS value
// strings: solid colors, gradients, shadows, and blur filters.
package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hellenic-development/token-bundler/pkg/figma"
)

// Paint converts one paint description into a CSS value string.
// Returns ok=false when the paint is invisible (explicit visible=false) or of
// an unsupported kind (e.g. IMAGE fills, which are asset references rather
// than colors).
func Paint(p figma.Paint) (string, bool) {
	if !p.IsVisible() {
		return "", false
	}

	switch p.Type {
	case "SOLID":
		if p.Color == nil {
			return "", false
		}
		return SolidColor(*p.Color, p.PaintOpacity()), true
	case "GRADIENT_LINEAR":
		return linearGradient(p)
	case "GRADIENT_RADIAL":
		stops, ok := gradientStops(p)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("radial-gradient(circle, %s)", stops), true
	case "GRADIENT_ANGULAR":
		stops, ok := gradientStops(p)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("conic-gradient(%s)", stops), true
	default:
		return "", false
	}
}

// SolidColor renders a color with the given paint-level opacity. A fully
// opaque color becomes a 6-digit hex string; anything translucent becomes an
// rgba() string with 0-255 integer channels and the alpha rounded to two
// decimals.
func SolidColor(c figma.Color, opacity float64) string {
	alpha := c.A * opacity
	if alpha >= 1 {
		return Hex(c)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", channel(c.R), channel(c.G), channel(c.B), alpha)
}

// Hex converts a Figma RGBA color (0-1 float channels) to a lowercase
// #rrggbb string, ignoring alpha.
func Hex(c figma.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}

// linearGradient renders a GRADIENT_LINEAR paint. The angle is derived from
// the paint's transform matrix via atan2(b, a) converted to degrees plus a
// 90-degree correction; without a transform the gradient runs top to bottom
// (180 degrees).
func linearGradient(p figma.Paint) (string, bool) {
	stops, ok := gradientStops(p)
	if !ok {
		return "", false
	}

	angle := 180.0
	if len(p.GradientTransform) > 0 && len(p.GradientTransform[0]) >= 2 {
		a := p.GradientTransform[0][0]
		b := p.GradientTransform[0][1]
		angle = math.Atan2(b, a)*180/math.Pi + 90
	}

	return fmt.Sprintf("linear-gradient(%sdeg, %s)", FormatNumber(angle), stops), true
}

// gradientStops renders a paint's stop list as "color pos%, color pos%" with
// positions rounded to the nearest integer percent. Stops are emitted in the
// order given.
func gradientStops(p figma.Paint) (string, bool) {
	if len(p.GradientStops) == 0 {
		return "", false
	}

	parts := make([]string, 0, len(p.GradientStops))
	for _, stop := range p.GradientStops {
		pos := int(math.Round(stop.Position * 100))
		parts = append(parts, fmt.Sprintf("%s %d%%", SolidColor(stop.Color, 1), pos))
	}

	return strings.Join(parts, ", "), true
}

// FormatNumber renders a float with the minimum number of digits, so whole
// values print without a decimal point (4 -> "4", 2.5 -> "2.5").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPx renders a float as a CSS pixel length.
func FormatPx(v float64) string {
	return FormatNumber(v) + "px"
}
