package domain

// MinBase is the smallest well-defined base. Base 1 is deliberately not
// special-cased; anything below MinBase fails with ErrInvalidBase.
const MinBase = 2

// Sentinel tokens used in the sequence form of a number. Digit values are
// never negative, so sentinels occupy the negative range.
const (
	// Point separates the integer and fractional digit sequences.
	Point = -1

	// Open marks the start of a recurring fractional block.
	Open = -2

	// Close marks the end of a recurring fractional block.
	Close = -3

	// Minus marks a negative number. Valid only as the first element.
	Minus = -4
)

// Seq is the flat sequence form of a number: digit values (as raw ints, so
// any base works without an alphabet ceiling) mixed with sentinel tokens.
//
//	Seq{15, 15, 0, Point, 8}          // FF0.8 in base 16
//	Seq{Minus, 1, Point, Open, 3, Close} // -1.[3]
type Seq []int

// ValidBase reports whether base is usable as an input or output base.
func ValidBase(base int) bool {
	return base >= MinBase
}

// ValidDigit reports whether v is a digit value for the given base.
func ValidDigit(v, base int) bool {
	return v >= 0 && v < base
}
