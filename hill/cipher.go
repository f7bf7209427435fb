package hill

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/katalvlaran/hillcipher/matrix"
)

// Cipher is a Hill cipher bound to one validated, invertible key matrix.
// The key and its inverse are computed once in NewCipher and never mutated.
type Cipher struct {
	key     *matrix.Dense // n×n code points of the key
	inverse matrix.Matrix // key⁻¹ (adjugate / det)
	det     float64       // det(key), never 0
	size    int           // n
}

// NewCipher builds the key matrix from key, checks that it is invertible and
// precomputes its inverse.
//
// Errors:
//   - ErrEmptyKey when key is empty.
//   - ErrKeyTooLong when key has more runes than the configured maximum.
//   - ErrSingularMatrix when det(key matrix) == 0.
func NewCipher(key string, opts ...Option) (*Cipher, error) {
	o := NewOptions(opts...)
	if key == "" {
		return nil, cipherErrorf(opNewCipher, ErrEmptyKey)
	}
	if n := utf8.RuneCountInString(key); o.maxKeyLength > 0 && n > o.maxKeyLength {
		return nil, cipherErrorf(opNewCipher, fmt.Errorf("%d runes, limit %d: %w", n, o.maxKeyLength, ErrKeyTooLong))
	}

	km, err := matrix.BuildSquare(key)
	if err != nil {
		return nil, cipherErrorf(opNewCipher, translate(err))
	}

	return newCipher(km)
}

// NewCipherFromMatrix binds a Cipher to an existing key matrix. The matrix is
// copied, so later changes to key do not affect the Cipher.
//
// Errors: ErrNotSquare, ErrDimensionMismatch (0×0 key), ErrSingularMatrix.
func NewCipherFromMatrix(key matrix.Matrix) (*Cipher, error) {
	if err := matrix.ValidateSquareNonNil(key); err != nil {
		return nil, cipherErrorf(opNewCipher, translate(err))
	}
	if key.Rows() == 0 {
		return nil, cipherErrorf(opNewCipher, translate(fmt.Errorf("0×0 key: %w", matrix.ErrInvalidDimensions)))
	}
	rows, err := matrix.ToRows(key)
	if err != nil {
		return nil, cipherErrorf(opNewCipher, translate(err))
	}
	km, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, cipherErrorf(opNewCipher, translate(err))
	}

	return newCipher(km)
}

// newCipher performs the eager singularity check and inversion. Key matrices
// of code points are integral, so matrix.Determinant is exact here and
// det == 0 holds exactly for singular keys.
func newCipher(km *matrix.Dense) (*Cipher, error) {
	det, err := matrix.Determinant(km)
	if err != nil {
		return nil, cipherErrorf(opNewCipher, translate(err))
	}
	if det == matrix.ZeroPivot {
		return nil, cipherErrorf(opNewCipher, fmt.Errorf("det = 0: %w", ErrSingularMatrix))
	}
	inv, err := matrix.Inverse(km)
	if err != nil {
		return nil, cipherErrorf(opNewCipher, translate(err))
	}

	return &Cipher{key: km, inverse: inv, det: det, size: km.Rows()}, nil
}

// Size returns the order n of the key matrix (the block width).
func (c *Cipher) Size() int { return c.size }

// Determinant returns det(key matrix).
func (c *Cipher) Determinant() float64 { return c.det }

// KeyMatrix returns a copy of the key matrix.
func (c *Cipher) KeyMatrix() matrix.Matrix { return c.key.Clone() }

// InverseKey returns a copy of the inverted key matrix.
func (c *Cipher) InverseKey() matrix.Matrix { return c.inverse.Clone() }

// Verify checks that key × inverse is the identity within matrix.DefaultEpsilon.
// It fails only when floating-point error in the inverse has grown large
// enough to threaten exact recovery of code points.
func (c *Cipher) Verify() error {
	prod, err := matrix.Mul(c.key, c.inverse)
	if err != nil {
		return cipherErrorf(opVerify, translate(err))
	}
	ok, err := matrix.IsIdentity(prod)
	if err != nil {
		return cipherErrorf(opVerify, translate(err))
	}
	if !ok {
		return cipherErrorf(opVerify, fmt.Errorf("key × inverse is not the identity: %w", ErrSingularMatrix))
	}

	return nil
}

// Encrypt chunks the code points of message into rows of width Size(),
// multiplies by the key and returns the product flattened row-major.
// An empty message encrypts to an empty sequence.
func (c *Cipher) Encrypt(message string) ([]int, error) {
	msg, err := matrix.BuildChunked(matrix.CodePoints(message), c.size)
	if err != nil {
		return nil, cipherErrorf(opEncrypt, translate(err))
	}
	prod, err := matrix.Mul(msg, c.key)
	if err != nil {
		return nil, cipherErrorf(opEncrypt, translate(err))
	}
	flat, err := matrix.Flatten(prod)
	if err != nil {
		return nil, cipherErrorf(opEncrypt, translate(err))
	}

	out := make([]int, len(flat))
	for i, v := range flat {
		out[i] = int(math.Round(v)) // integral already; Round guards the conversion
	}

	return out, nil
}

// Decrypt chunks tokens into rows of width Size(), multiplies by the inverse
// key, rounds every cell to the nearest integer and maps it to a rune in
// row-major order. Cells that decode to 0 are padding and are dropped.
//
// Errors: ErrMalformedInput when a cell decodes to a negative value or to a
// value that is not a valid Unicode scalar.
func (c *Cipher) Decrypt(tokens []int) (string, error) {
	numbers := make([]float64, len(tokens))
	for i, tok := range tokens {
		numbers[i] = float64(tok)
	}
	msg, err := matrix.BuildChunked(numbers, c.size)
	if err != nil {
		return "", cipherErrorf(opDecrypt, translate(err))
	}
	prod, err := matrix.Mul(msg, c.inverse)
	if err != nil {
		return "", cipherErrorf(opDecrypt, translate(err))
	}
	rounded, err := matrix.Round(prod)
	if err != nil {
		return "", cipherErrorf(opDecrypt, translate(err))
	}
	codes, err := matrix.Flatten(rounded)
	if err != nil {
		return "", cipherErrorf(opDecrypt, translate(err))
	}

	out := make([]rune, 0, len(codes))
	for i, code := range codes {
		if code == 0 {
			continue
		}
		if code < 0 || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
			return "", cipherErrorf(opDecrypt, fmt.Errorf("cell %d decodes to %v: %w", i, code, ErrMalformedInput))
		}
		out = append(out, rune(code))
	}

	return string(out), nil
}

// DecryptString parses whitespace-separated integer tokens and decrypts them.
func (c *Cipher) DecryptString(ciphertext string) (string, error) {
	tokens, err := ParseTokens(ciphertext)
	if err != nil {
		return "", cipherErrorf(opDecrypt, err)
	}

	return c.Decrypt(tokens)
}

// Apply runs the cipher in the given mode and returns printable output:
// space-joined tokens for ModeEncrypt, plaintext for ModeDecrypt.
func (c *Cipher) Apply(mode Mode, input string) (string, error) {
	switch mode {
	case ModeEncrypt:
		tokens, err := c.Encrypt(input)
		if err != nil {
			return "", err
		}

		return FormatTokens(tokens), nil
	case ModeDecrypt:
		return c.DecryptString(input)
	}

	return "", cipherErrorf(opApply, fmt.Errorf("%d: %w", int(mode), ErrInvalidMode))
}

// Encrypt encrypts message with key. The key is validated first.
//
// Errors: ErrNotSquare, ErrSingularMatrix, ErrDimensionMismatch.
func Encrypt(message string, key matrix.Matrix) ([]int, error) {
	c, err := NewCipherFromMatrix(key)
	if err != nil {
		return nil, cipherErrorf(opEncrypt, err)
	}

	return c.Encrypt(message)
}

// Decrypt decrypts tokens with key. The key is validated first.
//
// Errors: ErrNotSquare, ErrSingularMatrix, ErrDimensionMismatch, ErrMalformedInput.
func Decrypt(tokens []int, key matrix.Matrix) (string, error) {
	c, err := NewCipherFromMatrix(key)
	if err != nil {
		return "", cipherErrorf(opDecrypt, err)
	}

	return c.Decrypt(tokens)
}
