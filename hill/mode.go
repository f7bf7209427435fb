package hill

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the cipher direction. The numeric values are the flag values
// accepted on the command line.
type Mode int

const (
	// ModeEncrypt turns plaintext into integer tokens.
	ModeEncrypt Mode = 0

	// ModeDecrypt turns integer tokens back into plaintext.
	ModeDecrypt Mode = 1
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeEncrypt:
		return "encrypt"
	case ModeDecrypt:
		return "decrypt"
	}

	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode parses a mode flag ("0" or "1", surrounding blanks ignored).
//
// Errors: ErrInvalidMode for anything else.
func ParseMode(s string) (Mode, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, cipherErrorf(opMode, fmt.Errorf("%q: %w", s, ErrInvalidMode))
	}
	switch m := Mode(n); m {
	case ModeEncrypt, ModeDecrypt:
		return m, nil
	}

	return 0, cipherErrorf(opMode, fmt.Errorf("%d: %w", n, ErrInvalidMode))
}
