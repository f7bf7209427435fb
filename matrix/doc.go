// SPDX-License-Identifier: MIT

// Package matrix is a small dense linear-algebra engine over float64 values.
//
// The matrix package provides:
//
//   - Dense, a row-major implementation of the Matrix interface with safe
//     accessors (At/Set return errors instead of panicking).
//   - Builders that turn text and flat number sequences into matrices
//     (BuildSquare, BuildChunked, NewDenseFromRows, Identity).
//   - Kernels: Mul, Transpose, Scale, Minor, Determinant (recursive cofactor
//     expansion), Cofactors, Adjugate and Inverse (adjugate method).
//   - DeterminantExact and IsIntegral. Integral matrices are expanded over
//     math/big, so Determinant, Cofactors and Inverse stay exact for them.
//   - Central validators and a unified sentinel error set.
//
// Cells are float64. Character codes are integral and fit exactly, but the
// products in a cofactor expansion do not once they pass 2^53, which is why
// integral inputs take the big-integer path and are divided only at the end.
//
// Determinant and Inverse are O(n!) by construction. They are meant for the
// small matrices produced from short key strings, not for large systems.
//
//	m, _ := matrix.BuildSquare("GYBNQKURP") // 3×3 of code points
//	det, _ := matrix.Determinant(m)          // 3171
//	inv, _ := matrix.Inverse(m)              // adjugate / det
package matrix
