package scene

// NodeType discriminates scene node variants. Property applicability and
// commit planning both switch on it.
type NodeType string

const (
	TypeFrame     NodeType = "frame"
	TypeRectangle NodeType = "rectangle"
	TypeText      NodeType = "text"
	TypeIcon      NodeType = "icon"
	TypeLine      NodeType = "line"
	TypePolygon   NodeType = "polygon"
	TypeGroup     NodeType = "group"
)

// ValidNodeTypes defines the closed set of node type tags.
var ValidNodeTypes = map[NodeType]bool{
	TypeFrame:     true,
	TypeRectangle: true,
	TypeText:      true,
	TypeIcon:      true,
	TypeLine:      true,
	TypePolygon:   true,
	TypeGroup:     true,
}

// SizingMode describes how a node resolves its size on one axis.
type SizingMode string

const (
	SizingFixed      SizingMode = "fixed"
	SizingFitContent SizingMode = "fit-content"
	SizingFill       SizingMode = "fill"
)

// LayoutAxis is the stacking direction of an auto-layout frame.
type LayoutAxis string

const (
	AxisHorizontal LayoutAxis = "horizontal"
	AxisVertical   LayoutAxis = "vertical"
)

// StrokeAlign positions a stroke relative to the node outline.
type StrokeAlign string

const (
	StrokeInside  StrokeAlign = "inside"
	StrokeCenter  StrokeAlign = "center"
	StrokeOutside StrokeAlign = "outside"
)

// TextGrowth describes how a text node reacts to content changes.
//
//   - GrowthAuto: both dimensions follow the rendered text.
//   - GrowthFixedWidth: width is authored, height follows the text.
//   - GrowthFixedSize: both dimensions are authored; text clips or wraps.
type TextGrowth string

const (
	GrowthAuto       TextGrowth = "auto"
	GrowthFixedWidth TextGrowth = "fixed-width"
	GrowthFixedSize  TextGrowth = "fixed-size"
)

// Properties is the authored property record carried by every node.
//
// Every node carries the full record; which fields are meaningful for a
// given node is decided by the property applicability tables in the props
// package, not here. Fields that can be bound to a variable use ColorField
// or StringField so the authored indirection survives until commit time.
type Properties struct {
	// Local transform. X/Y translate relative to the parent's origin,
	// Rotation in radians.
	X        float64
	Y        float64
	Rotation float64

	Width  float64
	Height float64

	SizingH SizingMode
	SizingV SizingMode

	// Auto-layout (frames only).
	Padding     Sides
	ItemSpacing float64
	Axis        LayoutAxis

	// Corner order: top-left, top-right, bottom-right, bottom-left.
	CornerRadius Sides

	Fill    ColorField
	Opacity float64

	Stroke      ColorField
	StrokeWidth Sides
	StrokeAlign StrokeAlign

	FontFamily StringField
	FontSize   float64
	LineHeight float64
	Growth     TextGrowth

	Name       string
	Annotation string
}

// Node is one entry in the scene graph.
//
// Nodes are created through Document.NewNode so that IDs are unique within
// the document and parent/child links stay consistent. The authored record
// is mutated only inside an UpdateScope.
type Node struct {
	ID       string
	Type     NodeType
	Parent   *Node
	Children []*Node

	Authored Properties
}

// LocalMatrix returns the node's transform relative to its parent.
func (n *Node) LocalMatrix() Matrix {
	return Translation(n.Authored.X, n.Authored.Y).Mul(Rotation(n.Authored.Rotation))
}

// WorldMatrix returns the node's transform relative to the document root,
// composed root-down so rotation accumulates through the ancestry.
func (n *Node) WorldMatrix() Matrix {
	if n.Parent == nil {
		return n.LocalMatrix()
	}
	return n.Parent.WorldMatrix().Mul(n.LocalMatrix())
}

// WorldBounds returns the axis-aligned bounding box of the node's rectangle
// under its world transform.
func (n *Node) WorldBounds() Bounds {
	m := n.WorldMatrix()
	return boundsOfRect(m, n.Authored.Width, n.Authored.Height)
}

// ResolvedFill returns the concrete fill color, following the variable
// reference when one is bound.
func (n *Node) ResolvedFill() Color { return n.Authored.Fill.Resolve() }

// ResolvedStroke returns the concrete stroke color.
func (n *Node) ResolvedStroke() Color { return n.Authored.Stroke.Resolve() }

// ResolvedFontFamily returns the concrete font family name.
func (n *Node) ResolvedFontFamily() string { return n.Authored.FontFamily.Resolve() }

// walk visits n and every descendant in depth-first order.
func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.walk(visit)
	}
}
