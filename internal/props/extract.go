package props

import (
	"github.com/beaki-design/beaki/internal/merge"
	"github.com/beaki-design/beaki/internal/scene"
)

// Field extractors. Each reads one node's authored+resolved representation
// of a field and returns it in the canonical form the aggregator folds over:
// composite fields as expanded quads, variable-capable fields as duals that
// keep the authored binding.
//
// Applicability gating happens in the aggregator via Group.AppliesTo; the
// extractors assume they are only called for applicable nodes.

// Position derives the node's position from its world transform relative to
// its parent's world bounds origin. Position is a derived geometric
// quantity, not an authored field: two nodes in differently-transformed
// parents can share authored X but sit at different places.
func Position(n *scene.Node) (x, y float64) {
	wx, wy := n.WorldMatrix().Translation()
	if n.Parent == nil {
		return wx, wy
	}
	pb := n.Parent.WorldBounds()
	return wx - pb.MinX, wy - pb.MinY
}

// WorldRotation derives the node's absolute rotation in radians from its
// world transform.
func WorldRotation(n *scene.Node) float64 {
	return n.WorldMatrix().RotationAngle()
}

// PaddingQuad returns the node's padding as a canonical 4-edge array.
func PaddingQuad(n *scene.Node) [4]float64 {
	return ExpandEdges(n.Authored.Padding)
}

// CornerQuad returns the node's corner radii as a canonical 4-corner array.
func CornerQuad(n *scene.Node) [4]float64 {
	return ExpandCorners(n.Authored.CornerRadius)
}

// StrokeWidthQuad returns the node's stroke width as a canonical 4-edge
// array.
func StrokeWidthQuad(n *scene.Node) [4]float64 {
	return ExpandEdges(n.Authored.StrokeWidth)
}

// FillDual reads the fill color, preserving a variable binding.
func FillDual(n *scene.Node) merge.Dual[scene.Color] {
	return merge.Dual[scene.Color]{Resolved: n.ResolvedFill(), Var: n.Authored.Fill.Var}
}

// StrokeDual reads the stroke color, preserving a variable binding.
func StrokeDual(n *scene.Node) merge.Dual[scene.Color] {
	return merge.Dual[scene.Color]{Resolved: n.ResolvedStroke(), Var: n.Authored.Stroke.Var}
}

// FontFamilyDual reads the font family, preserving a variable binding.
func FontFamilyDual(n *scene.Node) merge.Dual[string] {
	return merge.Dual[string]{Resolved: n.ResolvedFontFamily(), Var: n.Authored.FontFamily.Var}
}
