package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/token-bundler/pkg/extractor"
	"github.com/hellenic-development/token-bundler/pkg/matcher"
)

// ToMarkdown renders extracted node properties and variable matches as a
// markdown document, ready to hand to a code-generation step or paste into a
// design-system doc.
func ToMarkdown(bags []extractor.PropertyBag, matches []matcher.Match, fileName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Design Properties - %s\n\n", fileName))

	for _, bag := range bags {
		sb.WriteString(fmt.Sprintf("## %s (`%s`, %s)\n\n", bag.Name, bag.ID, bag.Kind))

		sb.WriteString("```css\n")
		if bag.Width > 0 || bag.Height > 0 {
			sb.WriteString(fmt.Sprintf("width: %gpx;\nheight: %gpx;\n", bag.Width, bag.Height))
		}
		if bag.Background != "" {
			sb.WriteString(fmt.Sprintf("background: %s;\n", bag.Background))
		}
		if bag.BorderColor != "" {
			sb.WriteString(fmt.Sprintf("border: %gpx solid %s;\n", bag.BorderWidth, bag.BorderColor))
		}
		if bag.CornerRadius != "" {
			sb.WriteString(fmt.Sprintf("border-radius: %s;\n", bag.CornerRadius))
		}
		if bag.BoxShadow != "" {
			sb.WriteString(fmt.Sprintf("box-shadow: %s;\n", bag.BoxShadow))
		}
		if bag.Filter != "" {
			sb.WriteString(fmt.Sprintf("filter: %s;\n", bag.Filter))
		}
		if bag.BackdropFilter != "" {
			sb.WriteString(fmt.Sprintf("backdrop-filter: %s;\n", bag.BackdropFilter))
		}
		if bag.Opacity < 1 {
			sb.WriteString(fmt.Sprintf("opacity: %g;\n", bag.Opacity))
		}
		if bag.Layout != nil {
			sb.WriteString("display: flex;\n")
			sb.WriteString(fmt.Sprintf("flex-direction: %s;\n", bag.Layout.Direction))
			sb.WriteString(fmt.Sprintf("justify-content: %s;\n", bag.Layout.JustifyContent))
			sb.WriteString(fmt.Sprintf("align-items: %s;\n", bag.Layout.AlignItems))
			sb.WriteString(fmt.Sprintf("gap: %gpx;\n", bag.Layout.Gap))
			sb.WriteString(fmt.Sprintf("padding: %gpx %gpx %gpx %gpx;\n",
				bag.Layout.PaddingTop, bag.Layout.PaddingRight, bag.Layout.PaddingBottom, bag.Layout.PaddingLeft))
		}
		if bag.Typography != nil {
			if bag.Typography.FontFamily != "" {
				sb.WriteString(fmt.Sprintf("font-family: '%s';\n", bag.Typography.FontFamily))
			}
			if bag.Typography.FontSize > 0 {
				sb.WriteString(fmt.Sprintf("font-size: %gpx;\n", bag.Typography.FontSize))
			}
			if bag.Typography.FontWeight > 0 {
				sb.WriteString(fmt.Sprintf("font-weight: %g;\n", bag.Typography.FontWeight))
			}
			if bag.Typography.LineHeight > 0 {
				sb.WriteString(fmt.Sprintf("line-height: %gpx;\n", bag.Typography.LineHeight))
			}
		}
		sb.WriteString("```\n\n")

		if len(bag.VariantAxes) > 0 {
			sb.WriteString("### Variants\n\n")
			for _, axis := range bag.VariantAxes {
				sb.WriteString(fmt.Sprintf("- **%s**: %s\n", axis.Name, strings.Join(axis.Values, ", ")))
			}
			sb.WriteString("\n")
		}
	}

	if len(matches) > 0 {
		sb.WriteString("## Variable Matches\n\n")
		sb.WriteString("| Variable | Token | Confidence | Reference |\n")
		sb.WriteString("|----------|-------|------------|----------|\n")
		for _, m := range matches {
			tokenName := "-"
			reference := "-"
			if m.Token != nil {
				tokenName = m.Token.Name
				reference = fmt.Sprintf("`%s`", m.Reference)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %.2f | %s |\n", m.VariableName, tokenName, m.Confidence, reference))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
