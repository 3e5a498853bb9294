// SPDX-License-Identifier: MIT
package homogeneous_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomkern/group"
	"github.com/katalvlaran/geomkern/homogeneous"
	"github.com/katalvlaran/geomkern/rng"
)

// sphereSpace builds S² = SO(3)/SO(2) with the given averaging order.
func sphereSpace(t *testing.T, seed uint64, averageOrder, levels int) (rng.State, *homogeneous.Space) {
	t.Helper()
	g := group.NewSpecialOrthogonal3()
	geom := homogeneous.NewSphereGeometry()
	st, sp, err := homogeneous.New(g, geom, rng.NewState(seed),
		homogeneous.Options{AverageOrder: averageOrder, NumLevels: levels})
	require.NoError(t, err)

	return st, sp
}

// TestAdditionTheorem_Accessors covers level bookkeeping: each level counts
// one eigenfunction in the averaged form.
func TestAdditionTheorem_Accessors(t *testing.T) {
	_, sp := sphereSpace(t, 1, 4, 3)
	at := sp.Addition()

	assert.Equal(t, 3, at.NumLevels())
	assert.Equal(t, []int{1, 1, 1}, at.NumEigenfunctionsPerLevel())
	assert.Equal(t, 3, at.NumEigenfunctions())
	assert.Equal(t, 4, at.AverageOrder())
	assert.Equal(t, []float64{0, 2, 6}, at.Eigenvalues())
	assert.Equal(t, []int{1, 3, 5}, at.Dimensions())
}

// TestAdditionTheorem_Shape verifies the [N1, N2, L] output shape.
func TestAdditionTheorem_Shape(t *testing.T) {
	st, sp := sphereSpace(t, 2, 8, 2)

	st, x := sp.Random(st, 3)
	_, x2 := sp.Random(st, 5)

	tensor, err := sp.Pairwise(x, x2)
	require.NoError(t, err)
	n1, n2, levels := tensor.Dims()
	assert.Equal(t, 3, n1)
	assert.Equal(t, 5, n2)
	assert.Equal(t, 2, levels)
}

// TestAdditionTheorem_EmptyBatch verifies the fail-fast empty contract.
func TestAdditionTheorem_EmptyBatch(t *testing.T) {
	st, sp := sphereSpace(t, 2, 4, 2)
	_, x := sp.Random(st, 2)

	_, err := sp.Pairwise(nil, x)
	assert.ErrorIs(t, err, homogeneous.ErrEmptyBatch)

	_, err = sp.Diag(nil)
	assert.ErrorIs(t, err, homogeneous.ErrEmptyBatch)
}

// TestAdditionTheorem_Symmetry verifies the double-sided averaging property:
// Pairwise(X, X2)[i,j,:] ≈ Pairwise(X2, X)[j,i,:] within the averaging-order
// approximation error.
func TestAdditionTheorem_Symmetry(t *testing.T) {
	st, sp := sphereSpace(t, 7, 128, 2)

	st, x := sp.Random(st, 2)
	_, x2 := sp.Random(st, 2)

	fwd, err := sp.Pairwise(x, x2)
	require.NoError(t, err)
	bwd, err := sp.Pairwise(x2, x)
	require.NoError(t, err)

	_, _, levels := fwd.Dims()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for l := 0; l < levels; l++ {
				assert.InDelta(t, fwd.At(i, j, l), bwd.At(j, i, l), 1.0,
					"swap symmetry within averaging tolerance")
			}
		}
	}
}

// TestAdditionTheorem_DiagIdentity verifies that the Monte-Carlo diagonal of
// the full path converges to the closed-form fast path: at the identity the
// averaged character collapses to the dimension of the H-invariant subspace.
func TestAdditionTheorem_DiagIdentity(t *testing.T) {
	st, sp := sphereSpace(t, 13, 128, 2)

	_, x := sp.Random(st, 2)

	full, err := sp.Pairwise(x, x)
	require.NoError(t, err)
	diag, err := sp.Diag(x)
	require.NoError(t, err)

	r, levels := diag.Dims()
	require.Equal(t, 2, r)
	for i := 0; i < 2; i++ {
		for l := 0; l < levels; l++ {
			assert.InDelta(t, diag.At(i, l), full.At(i, i, l), 1.0,
				"full-path diagonal must approach the closed form")
		}
	}
}

// TestAdditionTheorem_DiagClosedForm pins the exact closed-form values for
// S²: dimension(ℓ) × 1 for every level and every point.
func TestAdditionTheorem_DiagClosedForm(t *testing.T) {
	st, sp := sphereSpace(t, 3, 4, 3)
	_, x := sp.Random(st, 4)

	diag, err := sp.Diag(x)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1.0, diag.At(i, 0))
		assert.Equal(t, 3.0, diag.At(i, 1))
		assert.Equal(t, 5.0, diag.At(i, 2))
	}
}

// TestAdditionTheorem_DiagNonNegative: diagonal entries are real and
// non-negative — a necessary condition for a valid reproducing kernel.
func TestAdditionTheorem_DiagNonNegative(t *testing.T) {
	st, sp := sphereSpace(t, 29, 64, 3)
	_, x := sp.Random(st, 3)

	full, err := sp.Pairwise(x, x)
	require.NoError(t, err)
	_, _, levels := full.Dims()
	for i := 0; i < 3; i++ {
		for l := 0; l < levels; l++ {
			assert.GreaterOrEqual(t, full.At(i, i, l), -0.5,
				"diagonal must be non-negative up to averaging error")
		}
	}
}

// TestAdditionTheorem_Reproducible verifies bit-identical replay of the full
// pipeline under an identical initial state.
func TestAdditionTheorem_Reproducible(t *testing.T) {
	seed := uint64(5)
	run := func() *homogeneous.Tensor {
		g := group.NewSpecialOrthogonal3()
		geom := homogeneous.NewSphereGeometry()
		st, sp, err := homogeneous.New(g, geom, rng.NewState(seed),
			homogeneous.Options{AverageOrder: 8, NumLevels: 2})
		require.NoError(t, err)
		_, x := sp.Random(st, 2)
		tensor, err := sp.Pairwise(x, x)
		require.NoError(t, err)

		return tensor
	}

	a, b := run(), run()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for l := 0; l < 2; l++ {
				assert.Equal(t, a.At(i, j, l), b.At(i, j, l), "bit-identical replay expected")
			}
		}
	}
}

// TestTensor_Level verifies the per-level matrix view.
func TestTensor_Level(t *testing.T) {
	st, sp := sphereSpace(t, 11, 4, 2)
	_, x := sp.Random(st, 3)

	tensor, err := sp.Pairwise(x, x)
	require.NoError(t, err)
	lvl := tensor.Level(1)
	r, c := lvl.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	assert.Equal(t, tensor.At(1, 2, 1), lvl.At(1, 2))

	assert.Panics(t, func() { tensor.Level(9) })
	assert.Panics(t, func() { tensor.At(0, 0, 9) })
}
