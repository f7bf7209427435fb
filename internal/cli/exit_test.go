package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/matrix"
)

func TestExitCode(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("outer: %w", err) }

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"canceled", wrap(context.Canceled), ExitInterrupted},
		{"usage", wrap(ErrUsage), ExitUsage},
		{"mode", wrap(hill.ErrInvalidMode), ExitUsage},
		{"malformed", wrap(hill.ErrMalformedInput), ExitUsage},
		{"empty key", wrap(hill.ErrEmptyKey), ExitUsage},
		{"singular", fmt.Errorf("%w: %w", hill.ErrSingularMatrix, matrix.ErrSingular), ExitSingular},
		{"not square", wrap(hill.ErrNotSquare), ExitShape},
		{"mismatch", wrap(hill.ErrDimensionMismatch), ExitShape},
		{"too long", wrap(hill.ErrKeyTooLong), ExitKeyTooLong},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}
