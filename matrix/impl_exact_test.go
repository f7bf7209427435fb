// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcipher/matrix"
)

// dependentGrid returns an n×n grid of pseudo-random code points in the
// supplementary private use planes whose last row is row0 + row1 − row2.
// The grid is exactly singular, but its cofactor terms are far beyond 2^53.
func dependentGrid(n int, seed int64) [][]float64 {
	const (
		base = 0x100000
		span = 0x7000
	)
	x := seed
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			x = (x*1103515245 + 12345) % (1 << 31)
			rows[i][j] = float64(base + x%span)
		}
	}
	for j := 0; j < n; j++ {
		rows[n-1][j] = rows[0][j] + rows[1][j] - rows[2][j]
	}

	return rows
}

// diagonalShift returns B·J + D with D = diag(100, 200, ..., 100n);
// det = ∏d · (1 + B·Σ1/d) ≠ 0.
func diagonalShift(n int, b float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = b
		}
		rows[i][i] += float64(100 * (i + 1))
	}

	return rows
}

func TestDeterminant_SingularLargeCodePoints(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 5, 6} {
		for seed := int64(1); seed <= 5; seed++ {
			n, seed := n, seed
			t.Run(fmt.Sprintf("n%d_seed%d", n, seed), func(t *testing.T) {
				m := MustRows(t, dependentGrid(n, seed))

				exact, err := matrix.DeterminantExact(m)
				require.NoError(t, err)
				require.Zero(t, exact.Sign())

				det, err := matrix.Determinant(m)
				require.NoError(t, err)
				require.Equal(t, 0.0, det)

				_, err = matrix.Inverse(m)
				require.ErrorIs(t, err, matrix.ErrSingular)

				_, err = matrix.Inverse(hide{m})
				require.ErrorIs(t, err, matrix.ErrSingular)
			})
		}
	}
}

func TestDeterminantExact_LargeValue(t *testing.T) {
	t.Parallel()

	m := MustRows(t, diagonalShift(6, 0x1F300))

	exact, err := matrix.DeterminantExact(m)
	require.NoError(t, err)
	want, ok := new(big.Int).SetString("2254124160000000000", 10)
	require.True(t, ok)
	require.Zero(t, want.Cmp(exact))

	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 2254124160000000000.0, det)
}

func TestDeterminantExact_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.DeterminantExact(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.DeterminantExact(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.DeterminantExact(MustRows(t, [][]float64{{1.5, 0}, {0, 1}}))
	require.ErrorIs(t, err, matrix.ErrNotIntegral)

	relaxed, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))
	_, err = matrix.DeterminantExact(relaxed)
	require.ErrorIs(t, err, matrix.ErrNotIntegral)
}

func TestIsIntegral(t *testing.T) {
	t.Parallel()

	ok, err := matrix.IsIntegral(MustRows(t, [][]float64{{1, -2}, {0, 1e15}}))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsIntegral(MustRows(t, [][]float64{{1, 0.5}}))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.IsIntegral(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInverse_LargeCodePoints checks M × M⁻¹ ≈ I for a well-conditioned
// 6×6 key of emoji code points.
func TestInverse_LargeCodePoints(t *testing.T) {
	t.Parallel()

	m := MustRows(t, diagonalShift(6, 0x1F300))
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	prod, err := matrix.Mul(m, inv)
	require.NoError(t, err)
	ok, err := matrix.IsIdentity(prod)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestInverse_NonIntegral covers the float path (Adjugate scaled by 1/det).
func TestInverse_NonIntegral(t *testing.T) {
	t.Parallel()

	inv, err := matrix.Inverse(MustRows(t, [][]float64{{0.5, 0}, {0, 0.25}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 0}, {0, 4}}, inv)

	inv, err = matrix.Inverse(MustRows(t, [][]float64{{0.5}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2}}, inv)

	_, err = matrix.Inverse(MustRows(t, [][]float64{{0.5, 1}, {0.25, 0.5}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}
