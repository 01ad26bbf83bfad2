// Package merge implements the fold that collapses per-node field readings
// into a single "common value, or Mixed" view, plus the equality predicates
// the fold is parameterized with.
//
// The fold is monotonic: once a field is Mixed it stays Mixed for the rest
// of the pass, and the final state does not depend on visit order (as long
// as every node is visited exactly once).
package merge

import "math"

type state uint8

const (
	stateUnset state = iota
	stateConcrete
	stateMixed
)

// Field is the fold accumulator for one snapshot field. It starts Unset (no
// applicable node seen yet), becomes Concrete after the first reading, and
// degrades to Mixed the first time a reading disagrees.
//
// The zero value is Unset.
type Field[T any] struct {
	st state
	v  T
}

// Concrete returns a Field holding an agreed value.
func Concrete[T any](v T) Field[T] {
	return Field[T]{st: stateConcrete, v: v}
}

// Mixed returns the sentinel field meaning "the selection disagrees".
func Mixed[T any]() Field[T] {
	return Field[T]{st: stateMixed}
}

// IsSet reports whether at least one applicable node contributed a reading.
func (f Field[T]) IsSet() bool { return f.st != stateUnset }

// IsMixed reports whether the selection disagrees on this field.
func (f Field[T]) IsMixed() bool { return f.st == stateMixed }

// Value returns the agreed value. ok is false when the field is Unset or
// Mixed.
func (f Field[T]) Value() (T, bool) {
	if f.st != stateConcrete {
		var zero T
		return zero, false
	}
	return f.v, true
}

// Eq is an equality predicate over one field's value type.
type Eq[T any] func(a, b T) bool

// Fold merges one node's reading into the accumulator:
//
//   - Unset accumulator: the reading becomes the common value.
//   - Mixed accumulator: stays Mixed (monotonic).
//   - Concrete accumulator: stays Concrete if eq agrees, else Mixed.
//
// A nil eq falls back to reflect-free comparison via any ==, which is only
// safe for comparable T; field extractors always pass an explicit predicate
// for composite and tolerance-compared fields.
func Fold[T any](acc Field[T], reading T, eq Eq[T]) Field[T] {
	switch acc.st {
	case stateUnset:
		return Concrete(reading)
	case stateMixed:
		return acc
	default:
		if eq == nil {
			if any(acc.v) == any(reading) {
				return acc
			}
			return Mixed[T]()
		}
		if eq(acc.v, reading) {
			return acc
		}
		return Mixed[T]()
	}
}

// Exact returns strict == equality for comparable types.
func Exact[T comparable]() Eq[T] {
	return func(a, b T) bool { return a == b }
}

// Tolerance returns |a-b| <= eps equality. Used for every numeric field so
// floating-point drift from transform composition does not manufacture
// spurious Mixed states.
func Tolerance(eps float64) Eq[float64] {
	return func(a, b float64) bool { return math.Abs(a-b) <= eps }
}

// QuadTolerance returns element-wise tolerance equality over a 4-element
// composite array.
func QuadTolerance(eps float64) Eq[[4]float64] {
	return func(a, b [4]float64) bool {
		for i := range a {
			if math.Abs(a[i]-b[i]) > eps {
				return false
			}
		}
		return true
	}
}

// SliceTolerance returns element-wise tolerance equality over float slices.
// Slices of different length are never equal.
func SliceTolerance(eps float64) Eq[[]float64] {
	return func(a, b []float64) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if math.Abs(a[i]-b[i]) > eps {
				return false
			}
		}
		return true
	}
}
