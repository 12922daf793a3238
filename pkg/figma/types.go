package figma

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, the document tree, and schema version information.
type FileResponse struct {
	Name          string `json:"name"`
	LastModified  string `json:"lastModified"`
	Version       string `json:"version"`
	Document      Node   `json:"document"`
	SchemaVersion int    `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// It contains file metadata and a map of node IDs to their corresponding NodeData.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a node with its document structure as returned for each
// requested node in a NodesResponse.
type NodeData struct {
	Document Node `json:"document"`
}

// VariablesResponse represents the response from the local variables API endpoint.
// It contains every variable defined in the file together with the collections
// (and therefore the modes) they belong to.
type VariablesResponse struct {
	Meta VariablesMeta `json:"meta"`
}

// VariablesMeta holds the variable and collection tables of a VariablesResponse,
// both keyed by ID.
type VariablesMeta struct {
	Variables           map[string]Variable           `json:"variables"`
	VariableCollections map[string]VariableCollection `json:"variableCollections"`
}

// Variable represents a single design variable: a named, mode-aware value
// defined in the file's variables feature.
type Variable struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	VariableCollectionID string         `json:"variableCollectionId"`
	ResolvedType         string         `json:"resolvedType"` // COLOR, FLOAT, STRING, BOOLEAN
	ValuesByMode         map[string]any `json:"valuesByMode"`
}

// VariableCollection groups variables and declares the modes their values vary by.
type VariableCollection struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Modes         []VariableMode `json:"modes"`
	DefaultModeID string         `json:"defaultModeId"`
}

// VariableMode is one named mode of a variable collection (e.g. "Light", "Dark").
type VariableMode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

// VariableAlias is the value of a node's boundVariables entry, pointing at a
// variable by ID.
type VariableAlias struct {
	Type string `json:"type"` // always "VARIABLE_ALIAS"
	ID   string `json:"id"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, shapes, component sets, or other Figma
// elements, each with their own fills, strokes, effects, layout settings, and
// children. Most fields are optional in the wire format; absent fields decode
// to their zero value and the extractor degrades them to defaults.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Children []Node `json:"children,omitempty"`

	Fills                []Paint   `json:"fills,omitempty"`
	Strokes              []Paint   `json:"strokes,omitempty"`
	StrokeWeight         float64   `json:"strokeWeight,omitempty"`
	CornerRadius         float64   `json:"cornerRadius,omitempty"`
	RectangleCornerRadii []float64 `json:"rectangleCornerRadii,omitempty"`
	Effects              []Effect  `json:"effects,omitempty"`
	Opacity              *float64  `json:"opacity,omitempty"`
	BlendMode            string    `json:"blendMode,omitempty"`

	Characters string     `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`

	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`

	LayoutMode            string  `json:"layoutMode,omitempty"` // "", "NONE", "HORIZONTAL", "VERTICAL"
	PrimaryAxisAlignItems string  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string  `json:"counterAxisAlignItems,omitempty"`
	ItemSpacing           float64 `json:"itemSpacing,omitempty"`
	PaddingLeft           float64 `json:"paddingLeft,omitempty"`
	PaddingRight          float64 `json:"paddingRight,omitempty"`
	PaddingTop            float64 `json:"paddingTop,omitempty"`
	PaddingBottom         float64 `json:"paddingBottom,omitempty"`

	BoundVariables               map[string]VariableAlias               `json:"boundVariables,omitempty"`
	VariantProperties            map[string]string                      `json:"variantProperties,omitempty"`
	ComponentPropertyDefinitions map[string]ComponentPropertyDefinition `json:"componentPropertyDefinitions,omitempty"`
}

// ComponentPropertyDefinition describes one property declared on a component
// or component set (variant axis, boolean toggle, text override, etc.).
type ComponentPropertyDefinition struct {
	Type           string   `json:"type"` // VARIANT, BOOLEAN, TEXT, INSTANCE_SWAP
	DefaultValue   any      `json:"defaultValue,omitempty"`
	VariantOptions []string `json:"variantOptions,omitempty"`
}

// Color represents an RGBA color with float values ranging from 0 to 1.
// The R, G, B, and A (alpha/opacity) values must be converted to 0-255 range
// for standard use.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// ColorStop is one stop of a gradient paint with its position along the
// gradient axis (0-1) and color.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Paint represents a fill or stroke applied to a Figma node.
// It includes the paint type (SOLID, GRADIENT_LINEAR, GRADIENT_RADIAL,
// GRADIENT_ANGULAR, IMAGE), visibility, opacity, and color information.
// Visible is a pointer because the API omits the field when true.
type Paint struct {
	Type              string      `json:"type"`
	Visible           *bool       `json:"visible,omitempty"`
	Opacity           *float64    `json:"opacity,omitempty"`
	Color             *Color      `json:"color,omitempty"`
	GradientStops     []ColorStop `json:"gradientStops,omitempty"`
	GradientTransform [][]float64 `json:"gradientTransform,omitempty"`
}

// IsVisible reports whether the paint should be rendered. Absent visibility
// means visible; only an explicit false hides the paint.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// PaintOpacity returns the paint-level opacity, defaulting to 1 when absent.
func (p Paint) PaintOpacity() float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// Effect represents a visual effect applied to a Figma node such as drop
// shadows, inner shadows, or blur effects.
type Effect struct {
	Type    string  `json:"type"` // DROP_SHADOW, INNER_SHADOW, LAYER_BLUR, BACKGROUND_BLUR
	Visible *bool   `json:"visible,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
	Color   *Color  `json:"color,omitempty"`
	Offset  *Vector `json:"offset,omitempty"`
	Spread  float64 `json:"spread,omitempty"`
}

// IsVisible reports whether the effect should be rendered. Absent visibility
// means visible; only an explicit false skips the effect.
func (e Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// Vector represents a 2D coordinate or offset with X and Y values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents text styling properties from Figma: font family,
// weight, size, line height, letter spacing, and alignment.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontPostScriptName  string  `json:"fontPostScriptName"`
	FontWeight          float64 `json:"fontWeight"`
	FontSize            float64 `json:"fontSize"`
	LineHeightPx        float64 `json:"lineHeightPx"`
	LetterSpacing       float64 `json:"letterSpacing"`
	TextAlignHorizontal string  `json:"textAlignHorizontal"`
	TextAlignVertical   string  `json:"textAlignVertical"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions
// (Width, Height) in the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
