package scene

// SidesKind discriminates the three authored shapes of a composite per-edge
// or per-corner field.
type SidesKind uint8

const (
	// SidesUniform stores one scalar applied to all four edges/corners.
	SidesUniform SidesKind = iota
	// SidesPair stores an axis pair: (vertical, horizontal) for edges,
	// i.e. vertical covers top+bottom and horizontal covers left+right.
	SidesPair
	// SidesQuad stores four explicit values. Edge order is top, right,
	// bottom, left; corner order is top-left, top-right, bottom-right,
	// bottom-left.
	SidesQuad
)

// Sides is a composite field (padding, corner radius, stroke width) in
// whichever shape it was last authored. Only the representation selected by
// Kind is meaningful.
//
// Writers must not collapse or expand the shape implicitly: an edit that
// targets a single edge reconstructs the full quad from resolved values
// first, so unedited edges keep their effective value.
type Sides struct {
	Kind    SidesKind
	Uniform float64
	Pair    [2]float64
	Quad    [4]float64
}

// UniformSides returns a Sides holding one scalar for all edges.
func UniformSides(v float64) Sides {
	return Sides{Kind: SidesUniform, Uniform: v}
}

// PairSides returns a Sides holding a (vertical, horizontal) axis pair.
func PairSides(vertical, horizontal float64) Sides {
	return Sides{Kind: SidesPair, Pair: [2]float64{vertical, horizontal}}
}

// QuadSides returns a Sides holding four explicit values in canonical order.
func QuadSides(a, b, c, d float64) Sides {
	return Sides{Kind: SidesQuad, Quad: [4]float64{a, b, c, d}}
}
