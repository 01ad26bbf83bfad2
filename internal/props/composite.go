package props

import "github.com/beaki-design/beaki/internal/scene"

// Edge indices into a canonical 4-edge array. The canonical order is fixed
// everywhere in the inspector: top, right, bottom, left.
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Corner indices into a canonical 4-corner array, clockwise from top-left:
// top-left, top-right, bottom-right, bottom-left.
const (
	CornerTopLeft = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// ExpandEdges normalizes a composite edge field (padding, stroke width) to
// the canonical 4-edge array, whatever shape it is stored in:
//
//	uniform s      -> [s, s, s, s]
//	pair (v, h)    -> [v, h, v, h]
//	quad           -> as stored
//
// A selection mixing a uniform-authored node and a quad-authored node that
// encode the same effective edges therefore aggregates as agreeing, not
// Mixed.
func ExpandEdges(s scene.Sides) [4]float64 {
	switch s.Kind {
	case scene.SidesUniform:
		return [4]float64{s.Uniform, s.Uniform, s.Uniform, s.Uniform}
	case scene.SidesPair:
		v, h := s.Pair[0], s.Pair[1]
		return [4]float64{v, h, v, h}
	default:
		return s.Quad
	}
}

// ExpandCorners normalizes a composite corner field to the canonical
// 4-corner array. The pair shape for corners is (top, bottom):
//
//	uniform s      -> [s, s, s, s]
//	pair (t, b)    -> [t, t, b, b]
//	quad           -> as stored
func ExpandCorners(s scene.Sides) [4]float64 {
	switch s.Kind {
	case scene.SidesUniform:
		return [4]float64{s.Uniform, s.Uniform, s.Uniform, s.Uniform}
	case scene.SidesPair:
		t, b := s.Pair[0], s.Pair[1]
		return [4]float64{t, t, b, b}
	default:
		return s.Quad
	}
}
