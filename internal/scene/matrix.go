package scene

import "math"

// Matrix is a 2D affine transform in row-major form:
//
//	| A  C  TX |
//	| B  D  TY |
//
// Scene transforms compose translation and rotation only; scale and skew are
// not authored, which keeps rotation extraction exact.
type Matrix struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation returns a transform that offsets by (x, y).
func Translation(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, TX: x, TY: y}
}

// Rotation returns a transform that rotates by rad radians around the origin.
func Rotation(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Mul composes m with n, applying n first.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A:  m.A*n.A + m.C*n.B,
		B:  m.B*n.A + m.D*n.B,
		C:  m.A*n.C + m.C*n.D,
		D:  m.B*n.C + m.D*n.D,
		TX: m.A*n.TX + m.C*n.TY + m.TX,
		TY: m.B*n.TX + m.D*n.TY + m.TY,
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.TX, m.B*x + m.D*y + m.TY
}

// Translation returns the transform's translation component.
func (m Matrix) Translation() (float64, float64) {
	return m.TX, m.TY
}

// RotationAngle returns the transform's rotation in radians, in (-pi, pi].
func (m Matrix) RotationAngle() float64 {
	return math.Atan2(m.B, m.A)
}

// Bounds is an axis-aligned rectangle in world space.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// boundsOfRect maps the local rectangle (0,0)-(w,h) through m and returns the
// axis-aligned box of the four transformed corners.
func boundsOfRect(m Matrix, w, h float64) Bounds {
	xs := [4]float64{}
	ys := [4]float64{}
	xs[0], ys[0] = m.Apply(0, 0)
	xs[1], ys[1] = m.Apply(w, 0)
	xs[2], ys[2] = m.Apply(w, h)
	xs[3], ys[3] = m.Apply(0, h)

	b := Bounds{MinX: xs[0], MinY: ys[0], MaxX: xs[0], MaxY: ys[0]}
	for i := 1; i < 4; i++ {
		b.MinX = math.Min(b.MinX, xs[i])
		b.MinY = math.Min(b.MinY, ys[i])
		b.MaxX = math.Max(b.MaxX, xs[i])
		b.MaxY = math.Max(b.MaxY, ys[i])
	}
	return b
}
