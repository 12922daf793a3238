// Package extractor walks a single design node and produces a normalized
// property bag: dimensions, layout, fills, strokes, effects, typography,
// variant axes, and component property definitions.
package extractor

import (
	"sort"

	"github.com/hellenic-development/token-bundler/pkg/css"
	"github.com/hellenic-development/token-bundler/pkg/figma"
)

// PropertyBag is the normalized property description of one design node.
// Extraction never fails: absent or malformed fields degrade to zero values,
// empty strings, or omitted entries, because upstream design data is
// inherently incomplete.
type PropertyBag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`

	// Dimensions (0 when no bounding box is present)
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Visual
	Background     string  `json:"background,omitempty"`     // first visible fill
	BorderColor    string  `json:"borderColor,omitempty"`    // first visible stroke
	BorderWidth    float64 `json:"borderWidth,omitempty"`
	BoxShadow      string  `json:"boxShadow,omitempty"`      // all visible shadow effects
	Filter         string  `json:"filter,omitempty"`         // layer blurs
	BackdropFilter string  `json:"backdropFilter,omitempty"` // background blurs
	CornerRadius   string  `json:"cornerRadius,omitempty"`
	Opacity        float64 `json:"opacity"`
	BlendMode      string  `json:"blendMode,omitempty"`

	// Layout (auto-layout nodes only)
	Layout *LayoutProperties `json:"layout,omitempty"`

	// Typography (text nodes only)
	Typography *TypographyProperties `json:"typography,omitempty"`

	// Bound variable references, keyed by property name.
	BoundVariables map[string]string `json:"boundVariables,omitempty"`

	// Variant axes (component-set nodes only)
	VariantAxes []VariantAxis `json:"variantAxes,omitempty"`

	// Declared component properties (components and component sets)
	ComponentProperties []ComponentProperty `json:"componentProperties,omitempty"`
}

// LayoutProperties describes a node's auto-layout as flexbox terms.
type LayoutProperties struct {
	Direction      string  `json:"direction"` // "row" or "column"
	JustifyContent string  `json:"justifyContent"`
	AlignItems     string  `json:"alignItems"`
	Gap            float64 `json:"gap"`
	PaddingTop     float64 `json:"paddingTop"`
	PaddingRight   float64 `json:"paddingRight"`
	PaddingBottom  float64 `json:"paddingBottom"`
	PaddingLeft    float64 `json:"paddingLeft"`
}

// TypographyProperties holds the text style of a text node.
type TypographyProperties struct {
	FontFamily    string  `json:"fontFamily,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	FontWeight    float64 `json:"fontWeight,omitempty"`
	LineHeight    float64 `json:"lineHeight,omitempty"`
	LetterSpacing float64 `json:"letterSpacing,omitempty"`
	TextAlign     string  `json:"textAlign,omitempty"`
	Content       string  `json:"content,omitempty"`
}

// VariantAxis is one variant dimension a component set declares, with the
// values observed across its children.
type VariantAxis struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ComponentProperty is one property declared on a component or component set.
type ComponentProperty struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	DefaultValue   any      `json:"defaultValue,omitempty"`
	VariantOptions []string `json:"variantOptions,omitempty"`
}

// ExtractNodeProperties produces the property bag for one design node. It
// inspects only the node itself (plus, for component sets, the immediate
// children's declared variants) and never recurses into the full subtree.
func ExtractNodeProperties(node *figma.Node) PropertyBag {
	bag := PropertyBag{
		ID:      node.ID,
		Name:    node.Name,
		Kind:    node.Type,
		Opacity: 1,
	}

	if node.AbsoluteBoundingBox != nil {
		bag.X = node.AbsoluteBoundingBox.X
		bag.Y = node.AbsoluteBoundingBox.Y
		bag.Width = node.AbsoluteBoundingBox.Width
		bag.Height = node.AbsoluteBoundingBox.Height
	}

	// First visible fill and stroke only: a node renders one background and
	// one border.
	for _, fill := range node.Fills {
		if value, ok := css.Paint(fill); ok {
			bag.Background = value
			break
		}
	}
	for _, stroke := range node.Strokes {
		if value, ok := css.Paint(stroke); ok {
			bag.BorderColor = value
			bag.BorderWidth = node.StrokeWeight
			break
		}
	}

	// All visible effects aggregate.
	effects := css.Effects(node.Effects)
	bag.BoxShadow = effects.BoxShadow
	bag.Filter = effects.Filter
	bag.BackdropFilter = effects.BackdropFilter

	bag.CornerRadius = cornerRadius(node)

	if node.Opacity != nil {
		bag.Opacity = *node.Opacity
	}
	if node.BlendMode != "" && node.BlendMode != "NORMAL" {
		bag.BlendMode = node.BlendMode
	}

	bag.Layout = layoutProperties(node)

	if node.Type == "TEXT" {
		bag.Typography = typographyProperties(node)
	}

	if len(node.BoundVariables) > 0 {
		bag.BoundVariables = make(map[string]string, len(node.BoundVariables))
		for prop, alias := range node.BoundVariables {
			bag.BoundVariables[prop] = alias.ID
		}
	}

	if node.Type == "COMPONENT_SET" {
		bag.VariantAxes = variantAxes(node)
	}

	if len(node.ComponentPropertyDefinitions) > 0 {
		bag.ComponentProperties = componentProperties(node)
	}

	return bag
}

// cornerRadius renders a node's corner radius, preferring the per-corner
// array over the scalar when both are present.
func cornerRadius(node *figma.Node) string {
	if len(node.RectangleCornerRadii) == 4 {
		r := node.RectangleCornerRadii
		return css.FormatPx(r[0]) + " " + css.FormatPx(r[1]) + " " + css.FormatPx(r[2]) + " " + css.FormatPx(r[3])
	}
	if node.CornerRadius > 0 {
		return css.FormatPx(node.CornerRadius)
	}
	return ""
}

// alignKeyword maps Figma alignment values onto flexbox keywords, defaulting
// to flex-start for unrecognized or absent values.
func alignKeyword(v string) string {
	switch v {
	case "CENTER":
		return "center"
	case "MAX":
		return "flex-end"
	case "SPACE_BETWEEN":
		return "space-between"
	default: // MIN, "", anything unrecognized
		return "flex-start"
	}
}

// layoutProperties converts a node's auto-layout settings to flexbox terms.
// Returns nil when the node has no layout mode.
func layoutProperties(node *figma.Node) *LayoutProperties {
	var direction string
	switch node.LayoutMode {
	case "HORIZONTAL":
		direction = "row"
	case "VERTICAL":
		direction = "column"
	default:
		return nil
	}

	return &LayoutProperties{
		Direction:      direction,
		JustifyContent: alignKeyword(node.PrimaryAxisAlignItems),
		AlignItems:     alignKeyword(node.CounterAxisAlignItems),
		Gap:            node.ItemSpacing,
		PaddingTop:     node.PaddingTop,
		PaddingRight:   node.PaddingRight,
		PaddingBottom:  node.PaddingBottom,
		PaddingLeft:    node.PaddingLeft,
	}
}

func typographyProperties(node *figma.Node) *TypographyProperties {
	props := &TypographyProperties{Content: node.Characters}
	if node.Style != nil {
		props.FontFamily = node.Style.FontFamily
		props.FontSize = node.Style.FontSize
		props.FontWeight = node.Style.FontWeight
		props.LineHeight = node.Style.LineHeightPx
		props.LetterSpacing = node.Style.LetterSpacing
		props.TextAlign = node.Style.TextAlignHorizontal
	}
	return props
}

// variantAxes reads each child's declared variant-property map and collects
// the axes with their observed values. Axes are sorted by name; values keep
// first-appearance order across children.
func variantAxes(node *figma.Node) []VariantAxis {
	values := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, child := range node.Children {
		for axis, value := range child.VariantProperties {
			if seen[axis] == nil {
				seen[axis] = make(map[string]bool)
			}
			if !seen[axis][value] {
				seen[axis][value] = true
				values[axis] = append(values[axis], value)
			}
		}
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	axes := make([]VariantAxis, 0, len(names))
	for _, name := range names {
		axes = append(axes, VariantAxis{Name: name, Values: values[name]})
	}
	return axes
}

// componentProperties flattens a node's declared component-property
// definitions, sorted by name for stable output.
func componentProperties(node *figma.Node) []ComponentProperty {
	names := make([]string, 0, len(node.ComponentPropertyDefinitions))
	for name := range node.ComponentPropertyDefinitions {
		names = append(names, name)
	}
	sort.Strings(names)

	props := make([]ComponentProperty, 0, len(names))
	for _, name := range names {
		def := node.ComponentPropertyDefinitions[name]
		props = append(props, ComponentProperty{
			Name:           name,
			Type:           def.Type,
			DefaultValue:   def.DefaultValue,
			VariantOptions: def.VariantOptions,
		})
	}
	return props
}
