// Package convert re-bases canonical numbers between arbitrary integer
// bases.
//
// The integer part converts exactly: digits accumulate into an unbounded
// big.Int by Horner's method and re-base through repeated division. The
// fractional part reduces to an exact rational and expands by long
// division in the output base; remainders are memoised by value, so a
// repeating expansion is detected the first time a remainder recurs.
// Expansion is bounded by Options.Bound; truncation at the bound is a
// documented approximation, not an error.
//
// A Converter binds an input base, output base and options once and can
// be shared freely between goroutines; it is never mutated after
// construction.
package convert
