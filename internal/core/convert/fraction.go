package convert

import (
	"math/big"

	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// reduce builds the exact fraction for the fractional digits: the plain
// digits contribute value/base^len, a recurring block contributes
// rep/((base^len(rep)-1) * base^len). big.Rat keeps the result in lowest
// terms, so equal values always share one remainder sequence. The result
// is in [0, 1]; exactly 1 is possible for recurring input like "0.[9]"
// and carries into the integer part upstream.
func reduce(fraction, recurring []int, base int) *big.Rat {
	b := big.NewInt(int64(base))

	den := new(big.Int).Exp(b, big.NewInt(int64(len(fraction))), nil)
	r := new(big.Rat).SetFrac(accumulate(fraction, base), den)

	if len(recurring) > 0 {
		repDen := new(big.Int).Exp(b, big.NewInt(int64(len(recurring))), nil)
		repDen.Sub(repDen, big.NewInt(1))
		repDen.Mul(repDen, den)
		r.Add(r, new(big.Rat).SetFrac(accumulate(recurring, base), repDen))
	}
	return r
}

// expand performs long division of a reduced fraction in [0, 1) in the
// output base. Each step multiplies the remainder by the output base and
// splits off one digit. Remainders stay below the reduced denominator, so
// by pigeonhole a terminating or repeating expansion resolves within
// denominator steps; memoising remainder values by their first step index
// turns that into linear-time cycle detection. With opts.Recurring off
// the memo is skipped and the expansion runs through cycles to the bound.
//
// The memo is consulted before the depth bound, so a cycle whose block
// closes exactly at the bound is still reported.
func expand(f *big.Rat, outputBase int, opts domain.Options) ([]int, int) {
	if f.Sign() == 0 {
		return nil, domain.NoRecurring
	}

	rem := new(big.Int).Set(f.Num())
	den := f.Denom()
	out := big.NewInt(int64(outputBase))
	bound := opts.Bound()

	var digits []int
	var seen map[string]int
	if opts.Recurring {
		seen = make(map[string]int)
	}

	digit := new(big.Int)
	mod := new(big.Int)
	for rem.Sign() != 0 {
		if opts.Recurring {
			key := rem.String()
			if first, ok := seen[key]; ok {
				return digits, first
			}
			if len(digits) == bound {
				break
			}
			seen[key] = len(digits)
		} else if len(digits) == bound {
			break
		}

		rem.Mul(rem, out)
		digit.DivMod(rem, den, mod)
		digits = append(digits, int(digit.Int64()))
		rem.Set(mod)
	}
	return digits, domain.NoRecurring
}

// Fraction re-bases fractional digits (with an optional recurring suffix)
// by exact-rational reduction and long division in the output base. It
// returns the produced digits and the index where a detected cycle
// starts, or domain.NoRecurring when the expansion terminated exactly or
// was cut off at the depth bound. Truncation at the bound is a documented
// approximation, never an error.
//
// Input digits are assumed validated. A recurring input that reduces to
// exactly 1 is the caller's carry to handle; here it would not stay
// below the denominator.
func Fraction(fraction, recurring []int, inputBase, outputBase int, opts domain.Options) ([]int, int) {
	return expand(reduce(fraction, recurring, inputBase), outputBase, opts)
}
