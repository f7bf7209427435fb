// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcipher/matrix"
)

// ---------- Mul ----------

func TestMul_Correctness(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{5, 6}, {7, 8}})
	want := [][]float64{{19, 22}, {43, 50}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, got)

	// Interface fallback must agree with the *Dense fast path.
	got, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, want, got)
}

func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 0, 2}, {0, 3, 0}})   // 2×3
	b := MustRows(t, [][]float64{{1, 1}, {2, 2}, {3, 3}}) // 3×2
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{7, 7}, {6, 6}}, got)
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_ZeroRows(t *testing.T) {
	t.Parallel()

	empty, err := matrix.BuildChunked(nil, 3)
	require.NoError(t, err)
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	got, err := matrix.Mul(empty, id)
	require.NoError(t, err)
	require.Equal(t, 0, got.Rows())
	require.Equal(t, 3, got.Cols())
}

// ---------- Transpose / Scale ----------

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	got, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, want, got)

	got, err = matrix.Transpose(hide{m})
	require.NoError(t, err)
	CompareExact(t, want, got)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, -2}, {0.5, 4}})
	got, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, -4}, {1, 8}}, got)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0), "input must not be mutated")
}

// ---------- Minor ----------

func TestMinor(t *testing.T) {
	t.Parallel()

	m := MustRows(t, gybnqkurp)
	got, err := matrix.Minor(m, 1, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{71, 66}, {85, 80}}, got)

	// The minor is a copy: writing into it leaves the source untouched.
	MustSet(t, got, 0, 0, -1)
	require.Equal(t, 71.0, MustAt(t, m, 0, 0))
}

func TestMinor_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Minor(MustDense(t, 1, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Minor(MustDense(t, 3, 3), 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Minor(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Determinant ----------

func TestDeterminant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{7}}, 7},
		{"1x1 zero", [][]float64{{0}}, 0},
		{"2x2 diagonal", [][]float64{{3, 0}, {0, 5}}, 15},
		{"2x2 general", [][]float64{{4, 7}, {2, 6}}, 10},
		{"3x3 key", gybnqkurp, 3171},
		{"3x3 singular", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"4x4", [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, tc.rows)

			got, err := matrix.Determinant(m)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			got, err = matrix.Determinant(hide{m})
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestDeterminant_DiagonalProduct checks det([[a,0],[0,d]]) == a*d over a small grid.
func TestDeterminant_DiagonalProduct(t *testing.T) {
	t.Parallel()

	for _, a := range []float64{-3, 0, 1, 65, 122} {
		for _, d := range []float64{-7, 0, 2, 90} {
			m := MustRows(t, [][]float64{{a, 0}, {0, d}})
			got, err := matrix.Determinant(m)
			require.NoError(t, err)
			require.Equalf(t, a*d, got, "a=%v d=%v", a, d)
		}
	}
}

func TestDeterminant_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Cofactors / Adjugate ----------

func TestCofactorsAndAdjugate(t *testing.T) {
	t.Parallel()

	m := MustRows(t, gybnqkurp)

	cof, err := matrix.Cofactors(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{330, 135, -489},
		{-1708, 70, 1743},
		{1329, -177, -1191},
	}, cof)

	adj, err := matrix.Adjugate(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{330, -1708, 1329},
		{135, 70, -177},
		{-489, 1743, -1191},
	}, adj)

	// M · adj(M) = det(M) · I
	prod, err := matrix.Mul(m, adj)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3171, 0, 0}, {0, 3171, 0}, {0, 0, 3171}}, prod)
}

func TestCofactors_OneByOne(t *testing.T) {
	t.Parallel()

	cof, err := matrix.Cofactors(MustRows(t, [][]float64{{9}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}}, cof)
}

// ---------- Inverse ----------

func TestInverse_ClosedForms(t *testing.T) {
	t.Parallel()

	inv, err := matrix.Inverse(MustRows(t, [][]float64{{4}}))
	require.NoError(t, err)
	CompareApprox(t, [][]float64{{0.25}}, inv)

	inv, err = matrix.Inverse(MustRows(t, [][]float64{{4, 7}, {2, 6}}))
	require.NoError(t, err)
	CompareApprox(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv)
}

// TestInverse_Identity checks M × M⁻¹ ≈ I for every invertible fixture.
func TestInverse_Identity(t *testing.T) {
	t.Parallel()

	fixtures := [][][]float64{
		{{65}},
		{{3, 0}, {0, 5}},
		{{71, 89}, {66, 78}},
		gybnqkurp,
		{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}},
		{{72, 101, 108}, {108, 111, 32}, {87, 0, 0}},
	}

	for idx, rows := range fixtures {
		rows := rows
		t.Run(fmt.Sprintf("fixture_%d", idx), func(t *testing.T) {
			m := MustRows(t, rows)

			inv, err := matrix.Inverse(m)
			require.NoError(t, err)

			prod, err := matrix.Mul(m, inv)
			require.NoError(t, err)
			ok, err := matrix.IsIdentity(prod)
			require.NoError(t, err)
			require.Truef(t, ok, "M×M⁻¹ is not identity:\n%v", prod)

			// Fallback path must agree.
			inv2, err := matrix.Inverse(hide{m})
			require.NoError(t, err)
			same, err := matrix.AllClose(inv, inv2, 0, tol)
			require.NoError(t, err)
			require.True(t, same)
		})
	}
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"non-square", MustDense(t, 2, 3), matrix.ErrNonSquare},
		{"1x1 zero", MustRows(t, [][]float64{{0}}), matrix.ErrSingular},
		{"2x2 singular", MustRows(t, [][]float64{{1, 2}, {2, 4}}), matrix.ErrSingular},
		{"3x3 singular", MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}), matrix.ErrSingular},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Inverse(tc.m)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
