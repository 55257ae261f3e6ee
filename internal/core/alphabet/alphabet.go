// Package alphabet maps digit values to symbols and back.
//
// The ordering follows the conventional extended alphabet:
//
//	|  Value  | Symbol          |
//	|---------|-----------------|
//	|  0 -  9 | '0' - '9'       |
//	| 10 - 35 | 'A' - 'Z'       |
//	| 36 - 61 | 'a' - 'z'       |
//	| 62 +    | code points 123+ |
//
// Above 61 the symbols continue through Unicode code points starting at
// 123, monotonically with no gaps. Sequence representations carry raw
// digit values instead and bypass the alphabet entirely, so they have no
// such ceiling.
package alphabet

import (
	"fmt"
	"unicode/utf8"

	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// extendedOffset is the distance between a digit value of 62 and up and
// its code point ('a' is value 36 at code point 97; the run continues
// unbroken past 'z' into code point 123).
const extendedOffset = 61

// MaxValue is the largest digit value the alphabet can encode.
const MaxValue = utf8.MaxRune - extendedOffset

// EncodeDigit returns the symbol for a digit value in the given base.
// It fails when the value is not a digit of the base, or past the
// alphabet's Unicode ceiling.
func EncodeDigit(v, base int) (rune, error) {
	if !domain.ValidDigit(v, base) {
		return 0, fmt.Errorf("%w: value %d not in 0..%d", domain.ErrInvalidDigit, v, base-1)
	}
	switch {
	case v < 10:
		return rune('0' + v), nil
	case v < 36:
		return rune('A' + v - 10), nil
	case v <= MaxValue:
		return rune(v + extendedOffset), nil
	default:
		return 0, fmt.Errorf("%w: value %d beyond the symbol alphabet", domain.ErrInvalidDigit, v)
	}
}

// DecodeSymbol returns the digit value of a symbol in the given base.
// It fails when the rune is not part of the alphabet, or decodes to a
// value at or above the base.
func DecodeSymbol(r rune, base int) (int, error) {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 36
	case r >= 123:
		v = int(r) - extendedOffset
	default:
		return 0, fmt.Errorf("%w: symbol %q not in alphabet", domain.ErrInvalidDigit, r)
	}
	if !domain.ValidDigit(v, base) {
		return 0, fmt.Errorf("%w: symbol %q is value %d, base %d allows 0..%d", domain.ErrInvalidDigit, r, v, base, base-1)
	}
	return v, nil
}
