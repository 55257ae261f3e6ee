package domain

import "fmt"

// Number is the canonical form of a parsed number: a sign and ordered
// digit sequences in the input base, most significant digit first.
// Numbers are immutable values; normalisers produce them, converters
// consume them.
type Number struct {
	// Base is the input base the digits are expressed in.
	Base int

	// Negative is the sign. Negative zero is permitted here and dropped
	// during conversion.
	Negative bool

	// Integer holds the integer-part digits, most significant first.
	// May be empty when Fraction or Recurring has digits.
	Integer []int

	// Fraction holds the non-repeating fractional digits.
	Fraction []int

	// Recurring holds the repeating fractional suffix, when the input
	// carried one ("0.[3]"). Usually empty.
	Recurring []int
}

// Validate checks the structural invariants: base at least MinBase, every
// digit below the base, and at least one digit somewhere.
func (n Number) Validate() error {
	if !ValidBase(n.Base) {
		return fmt.Errorf("%w: %d", ErrInvalidBase, n.Base)
	}
	if len(n.Integer) == 0 && len(n.Fraction) == 0 && len(n.Recurring) == 0 {
		return fmt.Errorf("%w: no digits", ErrMalformedNumber)
	}
	for _, part := range [][]int{n.Integer, n.Fraction, n.Recurring} {
		for _, d := range part {
			if !ValidDigit(d, n.Base) {
				return fmt.Errorf("%w: value %d not in 0..%d", ErrInvalidDigit, d, n.Base-1)
			}
		}
	}
	return nil
}

// IsZero reports whether every digit is zero.
func (n Number) IsZero() bool {
	for _, part := range [][]int{n.Integer, n.Fraction, n.Recurring} {
		for _, d := range part {
			if d != 0 {
				return false
			}
		}
	}
	return true
}

// Digits is a converted number: ordered digit sequences in the output
// base, plus the index of a detected recurring cycle, if any.
type Digits struct {
	// Base is the output base the digits are expressed in.
	Base int

	// Negative is the sign of the converted value.
	Negative bool

	// Integer holds the integer-part digits, most significant first.
	// Never empty; a zero integer part is the single digit 0.
	Integer []int

	// Fraction holds the fractional digits. Empty when the value is an
	// integer or the fractional part reduced away.
	Fraction []int

	// RecurringStart is the index into Fraction of the first digit of a
	// detected repeating cycle, or NoRecurring when the expansion
	// terminated or was truncated at the depth bound.
	RecurringStart int
}

// NoRecurring is the RecurringStart value when no cycle was detected.
const NoRecurring = -1

// HasRecurring reports whether a repeating cycle was detected.
func (d Digits) HasRecurring() bool {
	return d.RecurringStart != NoRecurring
}
