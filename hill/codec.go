package hill

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TokenSeparator joins encrypted tokens in FormatTokens.
const TokenSeparator = " "

// ParseTokens splits s on any whitespace and parses each field as a base-10
// integer. An empty or all-blank s yields an empty slice.
//
// Errors: ErrMalformedInput, annotated with the 0-based token index.
func ParseTokens(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			reason := err
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				reason = numErr.Err
			}

			return nil, cipherErrorf(opParse, fmt.Errorf("token %d %q: %v: %w", i, f, reason, ErrMalformedInput))
		}
		out[i] = n
	}

	return out, nil
}

// FormatTokens renders tokens as decimal integers joined by TokenSeparator.
func FormatTokens(tokens []int) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = strconv.Itoa(tok)
	}

	return strings.Join(parts, TokenSeparator)
}
