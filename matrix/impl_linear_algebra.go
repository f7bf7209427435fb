// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, scalar scaling, minors, determinant by
// recursive cofactor expansion and inversion by the adjugate method. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used across the module.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - Determinant/Inverse allocate every minor as a fresh copy; recursion never
//     shares a mutable backing buffer with its parent.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot products and expansions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero determinant in Inverse.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it already is a *Dense, or a Dense copy read
// through the interface otherwise. Kernels that recurse (Determinant,
// Cofactors) work on the flat buffer only.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loops; one allocation for C.
//   - A with zero rows (an empty message) yields a 0×B.Cols result.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // padding cells contribute nothing
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := src.r, src.c
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[base+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := newDenseZeroOK(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range src.data {
		res.data[idx] = src.data[idx] * alpha
	}

	return res, nil
}

// Minor returns the submatrix of m obtained by deleting row `row` and column `col`.
// MAIN DESCRIPTION:
//   - The result is a freshly allocated (r-1)×(c-1) copy; it never aliases m.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (m has a single row or column),
//     ErrOutOfRange (row/col outside m).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Minor(m Matrix, row, col int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorDense(src, row, col), nil
}

// minorDense copies src without row `skipRow` and column `skipCol`.
// Caller guarantees indices are valid and src is at least 2×2.
func minorDense(src *Dense, skipRow, skipCol int) *Dense {
	rows, cols := src.r-1, src.c-1
	out := &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: src.validateNaNInf,
	}
	var i, j, dst int
	for i = 0; i < src.r; i++ {
		if i == skipRow {
			continue
		}
		for j = 0; j < src.c; j++ {
			if j == skipCol {
				continue
			}
			out.data[dst] = src.data[i*src.c+j]
			dst++
		}
	}

	return out
}

// Determinant computes det(m) by Laplace (cofactor) expansion along row 0.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); reject 0×0.
//   - Stage 2: size 1 → the single cell; size 2 → ad − bc;
//     size n → Σ_c (−1)^c · m[0][c] · det(minor(0,c)).
//   - Stage 3: integral inputs expand over big.Int (DeterminantExact) and
//     round once at the end; other inputs expand in float64.
//
// Behavior highlights:
//   - Every minor is a fresh copy; the recursion is side-effect free.
//   - For integral inputs the result is 0 exactly when the matrix is singular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0).
//
// Complexity:
//   - Time O(n!), Space O(n²) along the recursion path. Intended for small n.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if m.Rows() == 0 {
		return 0, matrixErrorf(opDeterminant, ErrInvalidDimensions)
	}
	src, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if isIntegralDense(src) {
		return bigToFloat(detBig(toBig(src), src.r)), nil
	}

	return detDense(src), nil
}

// detDense is the recursive kernel behind Determinant. src is square, n ≥ 1.
func detDense(src *Dense) float64 {
	n := src.r
	switch n {
	case 1:
		return src.data[0]
	case 2:
		return src.data[0]*src.data[3] - src.data[1]*src.data[2]
	}

	det := ZeroSum
	sign := 1.0
	for c := 0; c < n; c++ {
		if v := src.data[c]; v != 0 {
			det += sign * v * detDense(minorDense(src, 0, c))
		}
		sign = -sign
	}

	return det
}

// Cofactors returns the cofactor matrix C with C[i][j] = (−1)^(i+j) · det(minor(i,j)).
// A 1×1 input has the single cofactor 1 (the determinant of the empty minor).
// Integral inputs are expanded exactly and each cofactor is rounded once.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0).
//
// Complexity:
//   - Time O(n² · (n−1)!), Space O(n²).
func Cofactors(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if m.Rows() == 0 {
		return nil, matrixErrorf(opCofactors, ErrInvalidDimensions)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if !isIntegralDense(src) {
		return cofactorsDense(src), nil
	}

	n := src.r
	adj := adjugateBig(toBig(src), n)
	out := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: src.validateNaNInf}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = bigToFloat(adj[j*n+i])
		}
	}

	return out, nil
}

// cofactorsDense builds the cofactor matrix of a square, non-empty src.
func cofactorsDense(src *Dense) *Dense {
	n := src.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: src.validateNaNInf}
	if n == 1 {
		out.data[0] = 1

		return out
	}

	var i, j int
	var sign float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sign = 1.0
			if (i+j)%2 == 1 {
				sign = -1.0
			}
			out.data[i*n+j] = sign * detDense(minorDense(src, i, j))
		}
	}

	return out
}

// Adjugate returns adj(m), the transpose of the cofactor matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0).
//
// Complexity:
//   - Same as Cofactors plus O(n²) for the transpose.
func Adjugate(m Matrix) (Matrix, error) {
	cof, err := Cofactors(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ computed by the adjugate method.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); reject 0×0.
//   - Stage 2 (integral m): det and adj over big.Int; det == 0 → ErrSingular;
//     every cell is the exact rational adj[i][j] / det rounded once.
//   - Stage 3 (otherwise): det in float64; det == 0 → ErrSingular;
//     Adjugate(m) scaled by 1/det.
//
// Behavior highlights:
//   - Size 1 yields [[1/a]] and size 2 yields [[d, −b], [−c, a]] / det, the
//     adjugate of those sizes.
//   - Result cells are fractional even for integral inputs.
//   - The singular check on integral inputs is exact at any magnitude.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0), ErrSingular.
//
// Complexity:
//   - Time O(n² · (n−1)!), Space O(n²).
//
// Notes:
//   - No pivoting and no conditioning checks; callers must keep n small.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if m.Rows() == 0 {
		return nil, matrixErrorf(opInverse, ErrInvalidDimensions)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := src.r
	if isIntegralDense(src) {
		data := toBig(src)
		det := detBig(data, n)
		if det.Sign() == 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		adj := adjugateBig(data, n)
		inv := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: src.validateNaNInf}
		for idx, a := range adj {
			inv.data[idx] = ratToFloat(a, det)
		}

		return inv, nil
	}

	det := detDense(src)
	if det == ZeroPivot {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	adj, err := Adjugate(src)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Scale(adj, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
