package normalisers

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/radix-labs/radix-cli/internal/core/alphabet"
	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// String parses a symbol string into a canonical number. Whitespace is
// insignificant anywhere; case is insignificant for bases up to 36, the
// alphabet's case-sensitivity boundary. An optional leading sign, at most
// one radix point, and a trailing "[...]" recurring block are accepted:
//
//	"FF0.8"   base 16
//	" -1 012" base 8 (whitespace stripped)
//	"0.[3]"   base 10, recurring 3
func String(s string, base int) (domain.Number, error) {
	n := domain.Number{Base: base}
	if !domain.ValidBase(base) {
		return n, fmt.Errorf("%w: %d", domain.ErrInvalidBase, base)
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if base <= 36 {
		s = strings.ToUpper(s)
	}

	rs := []rune(s)
	i := 0
	if len(rs) > 0 && (rs[0] == '+' || rs[0] == '-') {
		n.Negative = rs[0] == '-'
		i++
	}

	var seenPoint, inRecurring, closed bool
	for ; i < len(rs); i++ {
		switch r := rs[i]; r {
		case '.':
			if seenPoint {
				return n, fmt.Errorf("%w: more than one radix point in %q", domain.ErrMalformedNumber, s)
			}
			seenPoint = true
		case '[':
			if !seenPoint || inRecurring {
				return n, fmt.Errorf("%w: misplaced %q in %q", domain.ErrMalformedNumber, r, s)
			}
			inRecurring = true
		case ']':
			if !inRecurring || len(n.Recurring) == 0 || i != len(rs)-1 {
				return n, fmt.Errorf("%w: misplaced %q in %q", domain.ErrMalformedNumber, r, s)
			}
			closed = true
		default:
			v, err := alphabet.DecodeSymbol(r, base)
			if err != nil {
				return n, err
			}
			switch {
			case inRecurring:
				n.Recurring = append(n.Recurring, v)
			case seenPoint:
				n.Fraction = append(n.Fraction, v)
			default:
				n.Integer = append(n.Integer, v)
			}
		}
	}
	if inRecurring && !closed {
		return n, fmt.Errorf("%w: unterminated recurring block in %q", domain.ErrMalformedNumber, s)
	}
	if len(n.Integer) == 0 && len(n.Fraction) == 0 && len(n.Recurring) == 0 {
		return n, fmt.Errorf("%w: no digits in %q", domain.ErrMalformedNumber, s)
	}
	return n, nil
}
