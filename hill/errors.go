package hill

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillcipher/matrix"
)

// Sentinel errors. Every error returned by this package matches one of these
// via errors.Is; errors that originate in the matrix package also match the
// underlying matrix sentinel.
var (
	// ErrNotSquare is returned when a key matrix is not square.
	ErrNotSquare = errors.New("hill: key matrix is not square")

	// ErrSingularMatrix is returned when the key matrix has a zero determinant.
	ErrSingularMatrix = errors.New("hill: key matrix is singular")

	// ErrDimensionMismatch is returned when message and key shapes disagree.
	ErrDimensionMismatch = errors.New("hill: dimension mismatch")

	// ErrMalformedInput is returned when ciphertext tokens are not integers or
	// decode to values that are not valid code points.
	ErrMalformedInput = errors.New("hill: malformed input")

	// ErrEmptyKey is returned for an empty key string.
	ErrEmptyKey = errors.New("hill: empty key")

	// ErrKeyTooLong is returned when a key exceeds the configured maximum length.
	ErrKeyTooLong = errors.New("hill: key too long")

	// ErrInvalidMode is returned for a mode flag other than 0 or 1.
	ErrInvalidMode = errors.New("hill: invalid mode")
)

// Operation tags.
const (
	opNewCipher = "NewCipher"
	opEncrypt   = "Encrypt"
	opDecrypt   = "Decrypt"
	opParse     = "ParseTokens"
	opMode      = "ParseMode"
	opApply     = "Apply"
	opVerify    = "Verify"
)

// cipherErrorf wraps err with an operation tag, preserving it via %w.
func cipherErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// translate maps a matrix-level error onto the matching hill sentinel while
// keeping the original chain intact. Unknown errors pass through unchanged.
// Empty key strings never reach it: NewCipher rejects them with ErrEmptyKey
// first, so an empty matrix here is a shape problem.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, matrix.ErrSingular):
		return fmt.Errorf("%w: %w", ErrSingularMatrix, err)
	case errors.Is(err, matrix.ErrNonSquare):
		return fmt.Errorf("%w: %w", ErrNotSquare, err)
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}

	return err
}
