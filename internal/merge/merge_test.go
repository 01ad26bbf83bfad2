package merge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold_FirstReadingBecomesCommon(t *testing.T) {
	f := Fold(Field[float64]{}, 42, Tolerance(0.01))

	require.True(t, f.IsSet())
	require.False(t, f.IsMixed())
	v, ok := f.Value()
	require.True(t, ok)
	assert.Equal(t, 42.0, v)
}

func TestFold_AgreementKeepsCommon(t *testing.T) {
	f := Fold(Field[float64]{}, 0.601, Tolerance(0.01))
	f = Fold(f, 0.599, Tolerance(0.01))

	v, ok := f.Value()
	require.True(t, ok)
	assert.Equal(t, 0.601, v, "the first reading stays the representative value")
}

func TestFold_DisagreementGoesMixed(t *testing.T) {
	f := Fold(Field[float64]{}, 0.60, Tolerance(0.01))
	f = Fold(f, 0.65, Tolerance(0.01))

	assert.True(t, f.IsMixed())
	_, ok := f.Value()
	assert.False(t, ok)
}

func TestFold_MixedIsMonotonic(t *testing.T) {
	f := Fold(Field[float64]{}, 1, Tolerance(0.01))
	f = Fold(f, 2, Tolerance(0.01))
	require.True(t, f.IsMixed())

	// Agreeing readings after the fact never un-mix the field.
	f = Fold(f, 1, Tolerance(0.01))
	f = Fold(f, 1, Tolerance(0.01))
	assert.True(t, f.IsMixed())
}

func TestFold_OrderIndependence(t *testing.T) {
	readings := []float64{3, 3.001, 2.999, 3.0005, 3}
	eq := Tolerance(0.01)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		shuffled := append([]float64(nil), readings...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		var f Field[float64]
		for _, r := range shuffled {
			f = Fold(f, r, eq)
		}
		assert.False(t, f.IsMixed(), "agreeing readings must not mix in any order: %v", shuffled)
	}
}

func TestFold_NilPredicateUsesStrictEquality(t *testing.T) {
	f := Fold(Field[string]{}, "fixed", nil)
	f = Fold(f, "fixed", nil)
	require.False(t, f.IsMixed())

	f = Fold(f, "fill", nil)
	assert.True(t, f.IsMixed())
}

func TestConcreteAndMixedConstructors(t *testing.T) {
	c := Concrete("a")
	require.True(t, c.IsSet())
	v, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	m := Mixed[string]()
	assert.True(t, m.IsSet())
	assert.True(t, m.IsMixed())
}

func TestTolerance_Boundary(t *testing.T) {
	// Exactly representable values, so the boundary claim is about <=, not
	// about floating-point rounding.
	eq := Tolerance(0.25)
	assert.True(t, eq(1.0, 1.25), "delta exactly at epsilon is equal")
	assert.False(t, eq(1.0, 1.2501))

	within := Tolerance(0.01)
	assert.True(t, within(0.601, 0.599))
	assert.False(t, within(0.60, 0.65))
}

func TestQuadTolerance(t *testing.T) {
	eq := QuadTolerance(0.01)
	assert.True(t, eq([4]float64{1, 2, 3, 4}, [4]float64{1.005, 2, 3, 3.995}))
	assert.False(t, eq([4]float64{1, 2, 3, 4}, [4]float64{1, 2, 3, 5}))
}

func TestSliceTolerance_LengthMismatchNeverEqual(t *testing.T) {
	eq := SliceTolerance(0.01)
	assert.False(t, eq([]float64{1, 2}, []float64{1, 2, 3}))
	assert.True(t, eq([]float64{1, 2}, []float64{1, 2}))
}
