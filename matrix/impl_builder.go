// SPDX-License-Identifier: MIT

// Package matrix - builders that materialize Dense matrices from text and
// flat number sequences.
//
// Purpose:
//   - BuildSquare: text → n×n matrix of Unicode code points, zero padded.
//   - BuildChunked: flat sequence → rows of a fixed width, zero padded.
//   - NewDenseFromRows / Identity: literal construction for callers and tests.
//
// Determinism:
//   - Row-major fill in input order; padding is always trailing zeros.

package matrix

import (
	"fmt"
	"math"
)

const (
	opBuildSquare  = "BuildSquare"
	opBuildChunked = "BuildChunked"
	opFromRows     = "NewDenseFromRows"
	opIdentity     = "Identity"
	opFlatten      = "Flatten"
)

// PadValue fills cells that the input did not cover.
const PadValue = 0.0

// CodePoints returns the Unicode code points of text as float64 values, in order.
// Complexity: O(len(text)).
func CodePoints(text string) []float64 {
	runes := []rune(text)
	out := make([]float64, len(runes))
	for i, r := range runes {
		out[i] = float64(r)
	}

	return out
}

// SquareOrder returns the smallest n ≥ 0 such that n² ≥ length.
// Complexity: O(1).
func SquareOrder(length int) int {
	if length <= 0 {
		return 0
	}
	n := int(math.Sqrt(float64(length)))
	// Correct for float rounding in either direction.
	for n*n < length {
		n++
	}
	for n > 1 && (n-1)*(n-1) >= length {
		n--
	}

	return n
}

// BuildSquare converts text into an n×n matrix of code points.
// MAIN DESCRIPTION:
//   - n = ceil(sqrt(runeCount(text))); cells are filled row-major with the
//     code points of text and the remainder is padded with PadValue.
//
// Implementation:
//   - Stage 1: decode runes; reject empty text.
//   - Stage 2: allocate n×n and copy codes into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions when text is empty.
//
// Determinism:
//   - Same text always yields the same matrix.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func BuildSquare(text string, opts ...Option) (*Dense, error) {
	codes := CodePoints(text)
	if len(codes) == 0 {
		return nil, matrixErrorf(opBuildSquare, fmt.Errorf("empty text: %w", ErrInvalidDimensions))
	}
	n := SquareOrder(len(codes))
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opBuildSquare, err)
	}
	copy(m.data, codes) // trailing cells stay PadValue

	return m, nil
}

// BuildChunked pads numbers with trailing PadValue until its length is a
// multiple of width, then splits it into consecutive rows of exactly width cells.
//
// Implementation:
//   - Stage 1: validate width ≥ 1 and that every value is finite.
//   - Stage 2: rows = ceil(len(numbers)/width); allocate rows×width; copy.
//
// Behavior highlights:
//   - Empty input yields a legal 0×width matrix so downstream products are
//     empty too.
//
// Errors:
//   - ErrInvalidDimensions (width < 1), ErrNaNInf (non-finite value).
//
// Complexity:
//   - Time O(len(numbers)+width), Space O(rows*width).
func BuildChunked(numbers []float64, width int) (*Dense, error) {
	if width < 1 {
		return nil, matrixErrorf(opBuildChunked, fmt.Errorf("width %d: %w", width, ErrInvalidDimensions))
	}
	for i, v := range numbers {
		if isNonFinite(v) {
			return nil, matrixErrorf(opBuildChunked, fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}
	rows := (len(numbers) + width - 1) / width
	m, err := newDenseZeroOK(rows, width)
	if err != nil {
		return nil, matrixErrorf(opBuildChunked, err)
	}
	copy(m.data, numbers)

	return m, nil
}

// NewDenseFromRows builds a Dense from literal rows.
// Every row must have the same, non-zero length.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row), ErrBadShape (ragged
//     rows), ErrNaNInf (non-finite value under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	var i, j int
	for i = range rows {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(rows[i]), cols, ErrBadShape))
		}
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n ≤ 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Flatten returns all cells of m in row-major order (row 0 left to right,
// then row 1, ...). The result is a fresh slice.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Flatten(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)

		return out, nil
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}

	return src.data, nil
}

// ToRows returns m as a slice of row slices (fresh copies).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	flat, err := Flatten(m)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return out, nil
}
