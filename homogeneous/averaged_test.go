// SPDX-License-Identifier: MIT
package homogeneous_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/homogeneous"
)

// flatCharacter is a trivial character over a rank-1 torus: χ(θ) = θ.
// It lets the averaging arithmetic be checked in closed form.
type flatCharacter struct{}

func (flatCharacter) Values(gammas *mat.Dense) ([]complex128, error) {
	rows, _ := gammas.Dims()
	out := make([]complex128, rows)
	for i := 0; i < rows; i++ {
		out[i] = complex(gammas.At(i, 0), 0)
	}

	return out, nil
}

// TestAveragedCharacter_BadConstruction checks the fail-fast constructor.
func TestAveragedCharacter_BadConstruction(t *testing.T) {
	_, err := homogeneous.NewAveragedCharacter(0, flatCharacter{})
	assert.ErrorIs(t, err, homogeneous.ErrAverageCount)

	_, err = homogeneous.NewAveragedCharacter(2, nil)
	assert.ErrorIs(t, err, homogeneous.ErrNilCharacter)
}

// TestAveragedCharacter_RowContract verifies that a row count that is not a
// multiple of S² is rejected before evaluation.
func TestAveragedCharacter_RowContract(t *testing.T) {
	avg, err := homogeneous.NewAveragedCharacter(3, flatCharacter{})
	require.NoError(t, err)

	// 3² = 9 does not divide 10.
	_, err = avg.Values(mat.NewDense(10, 1, nil))
	assert.ErrorIs(t, err, homogeneous.ErrAverageOrder)
}

// TestAveragedCharacter_MeanOverBothAxes verifies the [S, N, S] collapse:
// with S = 2, N = 2 and values laid out (h₁, n, h₂), the result is the
// arithmetic mean over the four (h₁, h₂) combinations per n.
func TestAveragedCharacter_MeanOverBothAxes(t *testing.T) {
	avg, err := homogeneous.NewAveragedCharacter(2, flatCharacter{})
	require.NoError(t, err)

	// Layout (u, g, v) with S=2, N=2: rows = u*4 + g*2 + v.
	// n=0 sees rows {0,1,4,5} = {1,2,5,6}; n=1 sees rows {2,3,6,7} = {3,4,7,8}.
	gammas := mat.NewDense(8, 1, []float64{1, 2, 3, 4, 5, 6, 7, 8})

	vals, err := avg.Values(gammas)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.InDelta(t, (1+2+5+6)/4.0, real(vals[0]), 1e-12)
	assert.InDelta(t, (3+4+7+8)/4.0, real(vals[1]), 1e-12)
	assert.InDelta(t, 0.0, imag(vals[0]), 1e-12)
}

// TestAveragedCharacter_AverageOrderAccessor covers the S accessor.
func TestAveragedCharacter_AverageOrderAccessor(t *testing.T) {
	avg, err := homogeneous.NewAveragedCharacter(5, flatCharacter{})
	require.NoError(t, err)
	assert.Equal(t, 5, avg.AverageOrder())
}
