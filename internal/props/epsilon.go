package props

// Per-field comparison tolerances. Geometry passes through transform
// composition before aggregation, so position and rotation absorb more
// floating-point drift than directly authored scalars.
const (
	// EpsValue covers padding, spacing, opacity, sizes, corner radii,
	// stroke widths, font size and line height.
	EpsValue = 0.01

	// EpsPosition covers derived X/Y.
	EpsPosition = 1e-3

	// EpsRotation covers derived rotation, in radians.
	EpsRotation = 1e-4
)
