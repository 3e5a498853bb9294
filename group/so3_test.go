// SPDX-License-Identifier: MIT
package group_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/group"
	"github.com/katalvlaran/geomkern/rng"
)

// TestSO3_RandomIsSpecialOrthogonal verifies that Haar samples are
// orthonormal within tolerance and have determinant +1 (sign-corrected,
// not merely probable).
func TestSO3_RandomIsSpecialOrthogonal(t *testing.T) {
	g := group.NewSpecialOrthogonal3()
	st := rng.NewState(11)

	_, samples := g.Random(st, 32)
	require.Len(t, samples, 32)

	var gram mat.Dense
	for _, q := range samples {
		gram.Mul(q.T(), q)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				assert.InDelta(t, want, gram.At(i, j), 1e-10, "QᵀQ must be identity")
			}
		}
		assert.InDelta(t, 1.0, mat.Det(q), 1e-10, "determinant must be +1")
	}
}

// TestSO3_RandomReproducible verifies deterministic replay from an identical
// initial state.
func TestSO3_RandomReproducible(t *testing.T) {
	g := group.NewSpecialOrthogonal3()
	st := rng.NewState(5)

	_, a := g.Random(st, 4)
	_, b := g.Random(st, 4)
	for i := range a {
		assert.True(t, mat.Equal(a[i], b[i]), "same state must replay identical rotations")
	}
}

// TestSO3_EigenfunctionsCatalogue checks signatures, eigenvalue ordering,
// and dimensions of the first levels.
func TestSO3_EigenfunctionsCatalogue(t *testing.T) {
	g := group.NewSpecialOrthogonal3()

	eig, err := g.Eigenfunctions(4)
	require.NoError(t, err)
	require.Equal(t, 4, eig.NumLevels())

	assert.Equal(t, []group.Signature{"0", "1", "2", "3"}, eig.Signatures)
	assert.Equal(t, []float64{0, 2, 6, 12}, eig.Eigenvalues)
	assert.Equal(t, []int{1, 3, 5, 7}, eig.Dimensions)
	assert.True(t, sortedNonDecreasing(eig.Eigenvalues), "levels must be eigenvalue-ordered")
}

// TestSO3_EigenfunctionsBadLevels checks the fail-fast contract.
func TestSO3_EigenfunctionsBadLevels(t *testing.T) {
	g := group.NewSpecialOrthogonal3()

	_, err := g.Eigenfunctions(0)
	assert.ErrorIs(t, err, group.ErrNumLevels)
}

// TestSO3_CharacterAtIdentity verifies χ_ℓ(e) = dimension (2ℓ+1).
func TestSO3_CharacterAtIdentity(t *testing.T) {
	g := group.NewSpecialOrthogonal3()
	eig, err := g.Eigenfunctions(4)
	require.NoError(t, err)

	identity := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	gammas, err := eig.TorusRepresentative([]*mat.Dense{identity})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, gammas.At(0, 0), 1e-12, "identity has zero rotation angle")

	for ell, chi := range eig.Characters {
		vals, errC := chi.Values(gammas)
		require.NoError(t, errC)
		require.Len(t, vals, 1)
		assert.InDelta(t, float64(eig.Dimensions[ell]), real(vals[0]), 1e-9)
		assert.InDelta(t, 0.0, imag(vals[0]), 1e-12)
	}
}

// TestSO3_CharacterClosedForm spot-checks χ_1 at a known angle:
// χ_1(θ) = 1 + 2cos(θ).
func TestSO3_CharacterClosedForm(t *testing.T) {
	g := group.NewSpecialOrthogonal3()
	eig, err := g.Eigenfunctions(2)
	require.NoError(t, err)

	theta := math.Pi / 3
	gammas := mat.NewDense(1, 1, []float64{theta})
	vals, err := eig.Characters[1].Values(gammas)
	require.NoError(t, err)
	assert.InDelta(t, 1+2*math.Cos(theta), real(vals[0]), 1e-12)
}

// TestSO3_DifferenceLayout verifies the row-major (i, j) layout and the
// group identity a·a⁻¹ = e.
func TestSO3_DifferenceLayout(t *testing.T) {
	g := group.NewSpecialOrthogonal3()
	eig, err := g.Eigenfunctions(1)
	require.NoError(t, err)

	_, samples := g.Random(rng.NewState(2), 3)
	diff := eig.Difference(samples[:2], samples)
	require.Len(t, diff, 6, "pairwise difference must have len(a)*len(b) entries")

	// diff[i*len(b)+j] = a_i · b_jᵀ; with a = b[:2], the (i, i) entries are e.
	for i := 0; i < 2; i++ {
		d := diff[i*3+i]
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				want := 0.0
				if r == c {
					want = 1.0
				}
				assert.InDelta(t, want, d.At(r, c), 1e-10)
			}
		}
	}
}

// TestSO3_CharacterBadTorusWidth checks the torus-shape contract.
func TestSO3_CharacterBadTorusWidth(t *testing.T) {
	g := group.NewSpecialOrthogonal3()
	eig, err := g.Eigenfunctions(1)
	require.NoError(t, err)

	_, errC := eig.Characters[0].Values(mat.NewDense(2, 2, nil))
	assert.ErrorIs(t, errC, group.ErrTorusShape)
}

// sortedNonDecreasing reports whether xs is non-decreasing.
func sortedNonDecreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}

	return true
}
