package convert

import (
	"fmt"
	"math/big"

	"github.com/radix-labs/radix-cli/internal/core/domain"
	"github.com/radix-labs/radix-cli/internal/normalisers"
)

// Converter binds an input base, output base and options once, for
// repeated conversions without re-validating the configuration on every
// call. It is an immutable parameter bundle: concurrent callers may share
// one freely.
type Converter struct {
	inputBase  int
	outputBase int
	opts       domain.Options
}

// New validates the bases and returns a bound converter.
func New(inputBase, outputBase int, opts domain.Options) (*Converter, error) {
	if !domain.ValidBase(inputBase) {
		return nil, fmt.Errorf("%w: input base %d", domain.ErrInvalidBase, inputBase)
	}
	if !domain.ValidBase(outputBase) {
		return nil, fmt.Errorf("%w: output base %d", domain.ErrInvalidBase, outputBase)
	}
	return &Converter{inputBase: inputBase, outputBase: outputBase, opts: opts}, nil
}

// ConvertString parses s in the bound input base and renders the result
// in the bound output base.
func (c *Converter) ConvertString(s string) (string, error) {
	return String(s, c.inputBase, c.outputBase, c.opts)
}

// ConvertSeq converts a digit sequence in the bound input base.
func (c *Converter) ConvertSeq(seq domain.Seq) (domain.Seq, error) {
	return Seq(seq, c.inputBase, c.outputBase, c.opts)
}

// ConvertNumber converts an already-normalised number. The number carries
// its own input base.
func (c *Converter) ConvertNumber(n domain.Number) (domain.Digits, error) {
	return Number(n, c.outputBase, c.opts)
}

// ConvertFloat converts a native float. The bound input base is
// irrelevant for floats; the exact binary value is used.
func (c *Converter) ConvertFloat(f float64) (domain.Digits, error) {
	return Float(f, c.outputBase, c.opts)
}

// Number converts a canonical number into output-base digits: the exact
// integer part, then the bounded fractional expansion, composed under the
// shared sign. Negative zero normalises to positive zero.
func Number(n domain.Number, outputBase int, opts domain.Options) (domain.Digits, error) {
	if !domain.ValidBase(outputBase) {
		return domain.Digits{}, fmt.Errorf("%w: output base %d", domain.ErrInvalidBase, outputBase)
	}
	if err := n.Validate(); err != nil {
		return domain.Digits{}, err
	}

	v := accumulate(n.Integer, n.Base)
	f := reduce(n.Fraction, n.Recurring, n.Base)
	if f.Sign() != 0 && f.IsInt() {
		// recurring input equal to one, e.g. "0.[9]": carry
		v.Add(v, big.NewInt(1))
		f.SetInt64(0)
	}

	frac, rec := expand(f, outputBase, opts)
	d := domain.Digits{
		Base:           outputBase,
		Negative:       n.Negative,
		Integer:        rebase(v, outputBase),
		Fraction:       frac,
		RecurringStart: rec,
	}
	if d.Negative && len(d.Fraction) == 0 && len(d.Integer) == 1 && d.Integer[0] == 0 {
		d.Negative = false
	}
	return d, nil
}

// String converts a symbol string between bases and renders the result as
// a string:
//
//	String("FF0.8", 16, 10, domain.DefaultOptions())  // "4080.5"
func String(s string, inputBase, outputBase int, opts domain.Options) (string, error) {
	n, err := normalisers.String(s, inputBase)
	if err != nil {
		return "", err
	}
	d, err := Number(n, outputBase, opts)
	if err != nil {
		return "", err
	}
	return AsString(d, opts.Recurring)
}

// Seq converts a digit sequence between bases and renders the result as a
// sequence:
//
//	Seq(domain.Seq{15, 15, 0, domain.Point, 8}, 16, 10, domain.DefaultOptions())
//	// domain.Seq{4, 0, 8, 0, domain.Point, 5}
func Seq(seq domain.Seq, inputBase, outputBase int, opts domain.Options) (domain.Seq, error) {
	n, err := normalisers.Seq(seq, inputBase)
	if err != nil {
		return nil, err
	}
	d, err := Number(n, outputBase, opts)
	if err != nil {
		return nil, err
	}
	return AsSeq(d, opts.Recurring), nil
}

// Float converts a native float into output-base digits using its exact
// binary value.
func Float(f float64, outputBase int, opts domain.Options) (domain.Digits, error) {
	n, err := normalisers.Float(f)
	if err != nil {
		return domain.Digits{}, err
	}
	return Number(n, outputBase, opts)
}
