package cli

import (
	"context"
	"errors"

	"github.com/katalvlaran/hillcipher/hill"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 84
	ExitSingular    = 85
	ExitShape       = 86
	ExitKeyTooLong  = 87
	ExitInterrupted = 130
)

// ErrUsage marks command-line misuse: wrong argument count or unknown flags.
var ErrUsage = errors.New("usage")

// ExitCode maps an error returned by the command tree to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, hill.ErrSingularMatrix):
		return ExitSingular
	case errors.Is(err, hill.ErrNotSquare), errors.Is(err, hill.ErrDimensionMismatch):
		return ExitShape
	case errors.Is(err, hill.ErrKeyTooLong):
		return ExitKeyTooLong
	case errors.Is(err, ErrUsage),
		errors.Is(err, hill.ErrInvalidMode),
		errors.Is(err, hill.ErrMalformedInput),
		errors.Is(err, hill.ErrEmptyKey):
		return ExitUsage
	}
	return ExitFailure
}
