package normalisers

import (
	"fmt"

	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// Seq parses a digit sequence into a canonical number. Digits are raw
// values, so any base works without the alphabet's symbol ceiling.
// Sentinels follow the same structure as the string form: an optional
// leading domain.Minus, at most one domain.Point, and a trailing
// domain.Open ... domain.Close recurring block:
//
//	domain.Seq{15, 15, 0, domain.Point, 8}  // FF0.8 in base 16
func Seq(seq domain.Seq, base int) (domain.Number, error) {
	n := domain.Number{Base: base}
	if !domain.ValidBase(base) {
		return n, fmt.Errorf("%w: %d", domain.ErrInvalidBase, base)
	}

	i := 0
	if len(seq) > 0 && seq[0] == domain.Minus {
		n.Negative = true
		i++
	}

	var seenPoint, inRecurring, closed bool
	for ; i < len(seq); i++ {
		switch v := seq[i]; v {
		case domain.Point:
			if seenPoint {
				return n, fmt.Errorf("%w: more than one radix point", domain.ErrMalformedNumber)
			}
			seenPoint = true
		case domain.Open:
			if !seenPoint || inRecurring {
				return n, fmt.Errorf("%w: misplaced recurring open at %d", domain.ErrMalformedNumber, i)
			}
			inRecurring = true
		case domain.Close:
			if !inRecurring || len(n.Recurring) == 0 || i != len(seq)-1 {
				return n, fmt.Errorf("%w: misplaced recurring close at %d", domain.ErrMalformedNumber, i)
			}
			closed = true
		case domain.Minus:
			return n, fmt.Errorf("%w: sign not at the start", domain.ErrMalformedNumber)
		default:
			if !domain.ValidDigit(v, base) {
				return n, fmt.Errorf("%w: value %d at %d not in 0..%d", domain.ErrInvalidDigit, v, i, base-1)
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
		return n, fmt.Errorf("%w: unterminated recurring block", domain.ErrMalformedNumber)
	}
	if len(n.Integer) == 0 && len(n.Fraction) == 0 && len(n.Recurring) == 0 {
		return n, fmt.Errorf("%w: empty sequence", domain.ErrMalformedNumber)
	}
	return n, nil
}
