// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for builders/kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcipher/matrix"
)

// tol is the absolute per-cell tolerance for floating comparisons.
const tol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths of kernels.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes m[i,j]=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// CompareExact asserts m equals want cell by cell (exact float equality).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "col count")
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "cell [%d,%d]", i, j)
		}
	}
}

// CompareApprox asserts m equals want within tol per cell.
func CompareApprox(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "col count")
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, m, i, j), tol, "cell [%d,%d]", i, j)
		}
	}
}

// gybnqkurp is the 3×3 code-point matrix of the key "GYBNQKURP".
var gybnqkurp = [][]float64{
	{71, 89, 66},
	{78, 81, 75},
	{85, 82, 80},
}
