// Package hill implements a classical Hill cipher over raw Unicode code points.
//
// A key string becomes an n×n key matrix (matrix.BuildSquare). A message is
// chunked into rows of width n, multiplied by the key, and flattened into a
// sequence of integers. Decryption chunks those integers the same way,
// multiplies by the key's inverse, rounds every cell and maps it back to a
// rune.
//
// There is no modular reduction: ciphertext values are unbounded integers,
// and the inverse is a real-valued matrix. This is an illustrative cipher,
// not a security primitive.
//
// # Key validity
//
// A key is usable only when its matrix is invertible. NewCipher checks the
// determinant once, eagerly, and precomputes the inverse:
//
//	c, err := hill.NewCipher("GYBNQKURP")
//	if errors.Is(err, hill.ErrSingularMatrix) {
//		// pick another key
//	}
//	tokens, _ := c.Encrypt("ACT")
//	plain, _ := c.Decrypt(tokens) // "ACT"
//
// # Padding
//
// The last message row is padded with code 0 (NUL). Decryption drops every
// cell that decodes to 0, so a plaintext that itself contains NUL runes does
// not round-trip. This is a known limitation of the scheme.
//
// A *Cipher is immutable after construction and safe for concurrent use.
// Cache memoizes Ciphers by key for callers that see the same keys often.
package hill
