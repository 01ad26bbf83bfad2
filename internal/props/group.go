package props

import "github.com/beaki-design/beaki/internal/scene"

// Group is a property group: the unit of applicability gating. A node that
// is outside a group's applicability set contributes nothing to that group's
// fold (skip, not disagreement) and receives no commit instruction for its
// properties.
type Group int

const (
	GroupGeometry Group = iota
	GroupSizing
	GroupLayout
	GroupCorner
	GroupFill
	GroupStroke
	GroupText
	GroupMeta
)

var groupNames = map[Group]string{
	GroupGeometry: "geometry",
	GroupSizing:   "sizing",
	GroupLayout:   "layout",
	GroupCorner:   "corner",
	GroupFill:     "fill",
	GroupStroke:   "stroke",
	GroupText:     "text",
	GroupMeta:     "meta",
}

// String returns the group's name.
func (g Group) String() string { return groupNames[g] }

// applicability maps each group to the node types it covers. Geometry and
// meta cover everything and are handled in AppliesTo directly.
var applicability = map[Group]map[scene.NodeType]bool{
	GroupSizing: {
		scene.TypeFrame:     true,
		scene.TypeRectangle: true,
		scene.TypeText:      true,
	},
	GroupLayout: {
		scene.TypeFrame: true,
	},
	GroupCorner: {
		scene.TypeFrame:     true,
		scene.TypeRectangle: true,
	},
	GroupFill: {
		scene.TypeFrame:     true,
		scene.TypeRectangle: true,
		scene.TypeText:      true,
		scene.TypeIcon:      true,
		scene.TypePolygon:   true,
	},
	GroupStroke: {
		scene.TypeFrame:     true,
		scene.TypeRectangle: true,
		scene.TypeLine:      true,
		scene.TypePolygon:   true,
	},
	GroupText: {
		scene.TypeText: true,
	},
}

// AppliesTo reports whether the group's properties are meaningful for nodes
// of type t.
func (g Group) AppliesTo(t scene.NodeType) bool {
	switch g {
	case GroupGeometry, GroupMeta:
		return true
	default:
		return applicability[g][t]
	}
}

// GroupOf returns the group a property belongs to. The switch is exhaustive
// over the closed Property set.
func GroupOf(p Property) Group {
	switch p {
	case PropX, PropY, PropRotation, PropWidth, PropHeight:
		return GroupGeometry
	case PropFitWidth, PropFitHeight, PropFillWidth, PropFillHeight:
		return GroupSizing
	case PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft,
		PropPaddingVertical, PropPaddingHorizontal, PropPaddingAll,
		PropItemSpacing, PropAxis:
		return GroupLayout
	case PropCornerAll, PropCornerTopLeft, PropCornerTopRight,
		PropCornerBottomRight, PropCornerBottomLeft:
		return GroupCorner
	case PropFillColor, PropOpacity:
		return GroupFill
	case PropStrokeColor, PropStrokeWidthAll, PropStrokeWidthTop,
		PropStrokeWidthRight, PropStrokeWidthBottom, PropStrokeWidthLeft,
		PropStrokeAlign:
		return GroupStroke
	case PropFontFamily, PropFontSize, PropLineHeight, PropGrowth:
		return GroupText
	case PropName, PropAnnotation:
		return GroupMeta
	}
	panic("props: property outside the closed set")
}

// Applies reports whether property p can be edited on nodes of type t.
func Applies(p Property, t scene.NodeType) bool {
	return GroupOf(p).AppliesTo(t)
}
