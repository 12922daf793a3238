package css

import (
	"strings"

	"github.com/hellenic-development/token-bundler/pkg/figma"
)

// EffectStyles holds the aggregate CSS produced from a node's effect list,
// split by the CSS property each effect kind belongs to. Empty fields mean
// the node has no visible effect of that kind.
type EffectStyles struct {
	BoxShadow      string // drop and inner shadows, comma-joined
	Filter         string // layer blurs, space-joined
	BackdropFilter string // background blurs, space-joined
}

// Effects aggregates all visible effects of a node. Effects with an explicit
// visible=false flag are skipped entirely and contribute nothing to the
// output, not even an empty list entry.
func Effects(effects []figma.Effect) EffectStyles {
	var shadows []string
	var filters []string
	var backdrops []string

	for _, e := range effects {
		if !e.IsVisible() {
			continue
		}

		switch e.Type {
		case "DROP_SHADOW", "INNER_SHADOW":
			shadows = append(shadows, Shadow(e))
		case "LAYER_BLUR":
			filters = append(filters, "blur("+FormatPx(e.Radius)+")")
		case "BACKGROUND_BLUR":
			backdrops = append(backdrops, "backdrop-blur("+FormatPx(e.Radius)+")")
		}
	}

	return EffectStyles{
		BoxShadow:      strings.Join(shadows, ", "),
		Filter:         strings.Join(filters, " "),
		BackdropFilter: strings.Join(backdrops, " "),
	}
}

// Shadow renders a single shadow effect as
// "[inset] <x>px <y>px <blur>px <spread>px <color>". Inner shadows carry the
// inset prefix. A missing offset or color degrades to zero / black, matching
// the general rule that malformed design data never errors.
func Shadow(e figma.Effect) string {
	var x, y float64
	if e.Offset != nil {
		x = e.Offset.X
		y = e.Offset.Y
	}

	color := "rgba(0, 0, 0, 0.25)"
	if e.Color != nil {
		color = SolidColor(*e.Color, 1)
	}

	var sb strings.Builder
	if e.Type == "INNER_SHADOW" {
		sb.WriteString("inset ")
	}
	sb.WriteString(FormatPx(x))
	sb.WriteString(" ")
	sb.WriteString(FormatPx(y))
	sb.WriteString(" ")
	sb.WriteString(FormatPx(e.Radius))
	sb.WriteString(" ")
	sb.WriteString(FormatPx(e.Spread))
	sb.WriteString(" ")
	sb.WriteString(color)

	return sb.String()
}
