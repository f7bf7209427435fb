package hill_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcipher/hill"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want hill.Mode
		err  bool
	}{
		{"0", hill.ModeEncrypt, false},
		{"1", hill.ModeDecrypt, false},
		{" 1 ", hill.ModeDecrypt, false},
		{"2", 0, true},
		{"-1", 0, true},
		{"", 0, true},
		{"encrypt", 0, true},
	}

	for _, tc := range tests {
		got, err := hill.ParseMode(tc.in)
		if tc.err {
			require.ErrorIsf(t, err, hill.ErrInvalidMode, "input %q", tc.in)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "encrypt", hill.ModeEncrypt.String())
	require.Equal(t, "decrypt", hill.ModeDecrypt.String())
	require.Equal(t, "Mode(7)", hill.Mode(7).String())
}
