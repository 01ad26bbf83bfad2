package aggregate

import (
	"github.com/beaki-design/beaki/internal/merge"
	"github.com/beaki-design/beaki/internal/props"
	"github.com/beaki-design/beaki/internal/scene"
)

// ComputeAllProperties folds the whole selection into one snapshot in a
// single pass. Every node is visited exactly once and contributes a reading
// to each property group that applies to its type; inapplicable groups are
// skipped, which is not the same as disagreeing.
//
// The per-field folds are order-independent (see merge.Fold), so any
// permutation of the selection produces an identical snapshot.
func ComputeAllProperties(selection []*scene.Node) Snapshot {
	s := Snapshot{Count: len(selection)}

	eqValue := merge.Tolerance(props.EpsValue)
	eqPos := merge.Tolerance(props.EpsPosition)
	eqRot := merge.Tolerance(props.EpsRotation)
	eqQuad := merge.QuadTolerance(props.EpsValue)
	eqColor := merge.DualEq(merge.Exact[scene.Color]())
	eqString := merge.DualEq(merge.Exact[string]())

	for _, n := range selection {
		a := &n.Authored

		// Geometry applies to every node type. Position and rotation are
		// derived from the world transform relative to the parent's world
		// bounds, not read from authored fields.
		x, y := props.Position(n)
		s.X = merge.Fold(s.X, x, eqPos)
		s.Y = merge.Fold(s.Y, y, eqPos)
		s.Rotation = merge.Fold(s.Rotation, props.WorldRotation(n), eqRot)
		s.Width = merge.Fold(s.Width, a.Width, eqValue)
		s.Height = merge.Fold(s.Height, a.Height, eqValue)

		if props.GroupSizing.AppliesTo(n.Type) {
			s.SizingH = merge.Fold(s.SizingH, a.SizingH, nil)
			s.SizingV = merge.Fold(s.SizingV, a.SizingV, nil)
		}

		if props.GroupLayout.AppliesTo(n.Type) {
			s.Padding = merge.Fold(s.Padding, props.PaddingQuad(n), eqQuad)
			s.ItemSpacing = merge.Fold(s.ItemSpacing, a.ItemSpacing, eqValue)
			s.Axis = merge.Fold(s.Axis, a.Axis, nil)
		}

		if props.GroupCorner.AppliesTo(n.Type) {
			s.CornerRadius = merge.Fold(s.CornerRadius, props.CornerQuad(n), eqQuad)
		}

		if props.GroupFill.AppliesTo(n.Type) {
			s.Fill = merge.Fold(s.Fill, props.FillDual(n), eqColor)
			s.Opacity = merge.Fold(s.Opacity, a.Opacity, eqValue)
		}

		if props.GroupStroke.AppliesTo(n.Type) {
			s.Stroke = merge.Fold(s.Stroke, props.StrokeDual(n), eqColor)
			s.StrokeWidth = merge.Fold(s.StrokeWidth, props.StrokeWidthQuad(n), eqQuad)
			s.StrokeAlign = merge.Fold(s.StrokeAlign, a.StrokeAlign, nil)
		}

		if props.GroupText.AppliesTo(n.Type) {
			s.FontFamily = merge.Fold(s.FontFamily, props.FontFamilyDual(n), eqString)
			s.FontSize = merge.Fold(s.FontSize, a.FontSize, eqValue)
			s.LineHeight = merge.Fold(s.LineHeight, a.LineHeight, eqValue)
			s.Growth = merge.Fold(s.Growth, a.Growth, nil)
		}
	}

	if len(selection) == 1 {
		a := &selection[0].Authored
		s.Name = merge.Concrete(a.Name)
		s.Annotation = merge.Concrete(a.Annotation)
	}

	return s
}
