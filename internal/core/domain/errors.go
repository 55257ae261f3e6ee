package domain

import "errors"

// Domain errors represent validation failures raised while a number is
// parsed or a converter is configured. The integer and fractional
// converters themselves never produce errors; they assume validated input.
var (
	// ErrInvalidBase indicates a base below 2.
	ErrInvalidBase = errors.New("invalid base")

	// ErrInvalidDigit indicates a symbol outside the alphabet, or a digit
	// value at or above its declared base.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrMalformedNumber indicates a structurally broken number: more than
	// one radix point, misplaced recurring brackets, or no digits at all.
	ErrMalformedNumber = errors.New("malformed number")
)
