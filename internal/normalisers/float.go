package normalisers

import (
	"fmt"
	"math"
	"math/big"

	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// Float decomposes a native float into a canonical base-10 number, using
// the exact binary value rather than any string rendering. The fractional
// remainder always terminates in base 10 because the reduced denominator
// of a float is a power of two. The input base of the surrounding
// conversion is irrelevant for floats.
func Float(f float64) (domain.Number, error) {
	n := domain.Number{Base: 10, Negative: math.Signbit(f)}

	r := new(big.Rat).SetFloat64(math.Abs(f))
	if r == nil {
		return n, fmt.Errorf("%w: %v is not finite", domain.ErrMalformedNumber, f)
	}

	rem := new(big.Int)
	quo := new(big.Int)
	quo.QuoRem(r.Num(), r.Denom(), rem)
	for _, c := range quo.String() {
		n.Integer = append(n.Integer, int(c-'0'))
	}

	ten := big.NewInt(10)
	digit := new(big.Int)
	mod := new(big.Int)
	for rem.Sign() != 0 {
		rem.Mul(rem, ten)
		digit.DivMod(rem, r.Denom(), mod)
		n.Fraction = append(n.Fraction, int(digit.Int64()))
		rem.Set(mod)
	}
	return n, nil
}
