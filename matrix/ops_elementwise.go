// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparisons and transforms.
//
// Purpose:
//   - AllClose / IsIdentity for tolerance-based checks of floating results
//     (e.g. M × M⁻¹ ≈ I).
//   - Round for snapping near-integral results back onto integers.
//
// Determinism:
//   - Fixed flat traversal 0..r*c-1.

package matrix

import (
	"fmt"
	"math"
)

const (
	opAllClose   = "AllClose"
	opIsIdentity = "IsIdentity"
	opRound      = "Round"
)

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| for every cell.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN/Inf tolerances are rejected with ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// IsIdentity reports whether m is square and within eps of the identity
// (eps from WithEpsilon, DefaultEpsilon otherwise).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0).
// Complexity: O(n²).
func IsIdentity(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opIsIdentity, err)
	}
	id, err := Identity(m.Rows())
	if err != nil {
		return false, matrixErrorf(opIsIdentity, err)
	}
	o := gatherOptions(opts...)

	return AllClose(m, id, 0, o.eps)
}

// Round returns a copy of m with every cell rounded to the nearest integer,
// halves away from zero (math.Round). Negative zero is normalized to 0.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Round(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRound, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opRound, fmt.Errorf("read: %w", err))
	}
	res, err := newDenseZeroOK(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(opRound, err)
	}
	var r float64
	for idx, v := range src.data {
		if r = math.Round(v); r == 0 {
			r = 0 // drop the sign of -0
		}
		res.data[idx] = r
	}

	return res, nil
}
