package convert

import (
	"strings"

	"github.com/radix-labs/radix-cli/internal/core/alphabet"
	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// AsSeq renders converted digits in sequence form: raw digit values with
// domain.Minus, domain.Point, domain.Open and domain.Close sentinels. The
// radix point appears only when there are fractional digits. When
// recurring is false a detected cycle is left unbracketed; the digits are
// used as-is.
func AsSeq(d domain.Digits, recurring bool) domain.Seq {
	seq := make(domain.Seq, 0, len(d.Integer)+len(d.Fraction)+4)
	if d.Negative {
		seq = append(seq, domain.Minus)
	}
	seq = append(seq, d.Integer...)
	if len(d.Fraction) == 0 {
		return seq
	}

	seq = append(seq, domain.Point)
	if recurring && d.HasRecurring() {
		seq = append(seq, d.Fraction[:d.RecurringStart]...)
		seq = append(seq, domain.Open)
		seq = append(seq, d.Fraction[d.RecurringStart:]...)
		seq = append(seq, domain.Close)
		return seq
	}
	return append(seq, d.Fraction...)
}

// AsString renders converted digits as an alphabet-encoded string, with a
// leading '-' for negatives and a detected cycle wrapped in "[...]"
// unless recurring output is off. Digit values past the alphabet's
// Unicode ceiling fail with ErrInvalidDigit; use the sequence form for
// such bases.
func AsString(d domain.Digits, recurring bool) (string, error) {
	var sb strings.Builder
	if d.Negative {
		sb.WriteByte('-')
	}

	encode := func(digits []int) error {
		for _, v := range digits {
			r, err := alphabet.EncodeDigit(v, d.Base)
			if err != nil {
				return err
			}
			sb.WriteRune(r)
		}
		return nil
	}

	if err := encode(d.Integer); err != nil {
		return "", err
	}
	if len(d.Fraction) == 0 {
		return sb.String(), nil
	}

	sb.WriteByte('.')
	if recurring && d.HasRecurring() {
		if err := encode(d.Fraction[:d.RecurringStart]); err != nil {
			return "", err
		}
		sb.WriteByte('[')
		if err := encode(d.Fraction[d.RecurringStart:]); err != nil {
			return "", err
		}
		sb.WriteByte(']')
		return sb.String(), nil
	}

	if err := encode(d.Fraction); err != nil {
		return "", err
	}
	return sb.String(), nil
}
