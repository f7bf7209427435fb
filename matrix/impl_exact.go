// SPDX-License-Identifier: MIT
// Package matrix: exact integer kernels.
//
// Purpose:
//   - Compute determinants and cofactors of integral matrices without rounding.
//     Code points reach 0x10FFFF, so cofactor products of even a 5×5 key leave
//     the 2^53 range where float64 is exact; a singular key must still
//     produce det == 0.
//
// Notes:
//   - Cells are converted to *big.Int once. Minors are fresh slices of
//     pointers; the big.Int values themselves are never mutated after
//     conversion, so sharing them between minors is safe.
//   - Division happens only at the very end (adj / det), as an exact
//     rational rounded once to float64.

package matrix

import (
	"math"
	"math/big"
)

const (
	opDeterminantExact = "DeterminantExact"
	opIsIntegral       = "IsIntegral"
)

// IsIntegral reports whether every cell of m is a finite integer.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func IsIntegral(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsIntegral, err)
	}
	src, err := toDense(m)
	if err != nil {
		return false, matrixErrorf(opIsIntegral, err)
	}

	return isIntegralDense(src), nil
}

func isIntegralDense(src *Dense) bool {
	for _, v := range src.data {
		if isNonFinite(v) || v != math.Trunc(v) {
			return false
		}
	}

	return true
}

// DeterminantExact computes det(m) as an exact integer by Laplace expansion
// along row 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0),
//     ErrNotIntegral (a cell is fractional, NaN or ±Inf).
//
// Complexity:
//   - Time O(n!) big-integer multiplications, Space O(n²) along the recursion path.
func DeterminantExact(m Matrix) (*big.Int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDeterminantExact, err)
	}
	if m.Rows() == 0 {
		return nil, matrixErrorf(opDeterminantExact, ErrInvalidDimensions)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opDeterminantExact, err)
	}
	if !isIntegralDense(src) {
		return nil, matrixErrorf(opDeterminantExact, ErrNotIntegral)
	}

	return detBig(toBig(src), src.r), nil
}

// toBig converts the cells of an integral src. big.Float holds any float64
// exactly, so the conversion is lossless at every magnitude.
func toBig(src *Dense) []*big.Int {
	out := make([]*big.Int, len(src.data))
	var f big.Float
	for i, v := range src.data {
		out[i], _ = f.SetFloat64(v).Int(nil)
	}

	return out
}

// minorBig copies the n×n data without row skipRow and column skipCol.
func minorBig(data []*big.Int, n, skipRow, skipCol int) []*big.Int {
	out := make([]*big.Int, 0, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		for j = 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			out = append(out, data[i*n+j])
		}
	}

	return out
}

// detBig is the exact counterpart of detDense. n ≥ 1.
func detBig(data []*big.Int, n int) *big.Int {
	switch n {
	case 1:
		return new(big.Int).Set(data[0])
	case 2:
		ad := new(big.Int).Mul(data[0], data[3])

		return ad.Sub(ad, new(big.Int).Mul(data[1], data[2]))
	}

	det := new(big.Int)
	term := new(big.Int)
	for c := 0; c < n; c++ {
		v := data[c]
		if v.Sign() == 0 {
			continue
		}
		term.Mul(v, detBig(minorBig(data, n, 0, c), n-1))
		if c%2 == 0 {
			det.Add(det, term)
		} else {
			det.Sub(det, term)
		}
	}

	return det
}

// adjugateBig returns adj = cofᵀ, i.e. adj[i][j] = (−1)^(i+j) · det(minor(j,i)).
// A 1×1 input has adjugate [1].
func adjugateBig(data []*big.Int, n int) []*big.Int {
	out := make([]*big.Int, n*n)
	if n == 1 {
		out[0] = big.NewInt(1)

		return out
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cof := detBig(minorBig(data, n, i, j), n-1)
			if (i+j)%2 == 1 {
				cof.Neg(cof)
			}
			out[j*n+i] = cof
		}
	}

	return out
}

// bigToFloat rounds x to the nearest float64.
func bigToFloat(x *big.Int) float64 {
	f, _ := new(big.Float).SetInt(x).Float64()

	return f
}

// ratToFloat rounds num/den to the nearest float64. den != 0.
func ratToFloat(num, den *big.Int) float64 {
	f, _ := new(big.Rat).SetFrac(num, den).Float64()

	return f
}
