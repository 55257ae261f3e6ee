package convert

import "math/big"

// accumulate folds a digit sequence (most significant first) into an
// unbounded integer by Horner's method: v = v*base + digit.
func accumulate(digits []int, base int) *big.Int {
	v := new(big.Int)
	b := big.NewInt(int64(base))
	d := new(big.Int)
	for _, digit := range digits {
		d.SetInt64(int64(digit))
		v.Mul(v, b)
		v.Add(v, d)
	}
	return v
}

// rebase renders a non-negative integer as digits in the output base,
// most significant first, by repeated division. Zero is the single
// digit 0. v is consumed.
func rebase(v *big.Int, outputBase int) []int {
	if v.Sign() == 0 {
		return []int{0}
	}

	b := big.NewInt(int64(outputBase))
	mod := new(big.Int)
	var out []int
	for v.Sign() != 0 {
		v.DivMod(v, b, mod)
		out = append(out, int(mod.Int64()))
	}

	// built least significant first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Integer re-bases integer-part digits exactly, whatever their magnitude.
// Input digits are assumed validated. A zero value (including an empty
// sequence) yields the single digit 0.
func Integer(digits []int, inputBase, outputBase int) []int {
	return rebase(accumulate(digits, inputBase), outputBase)
}
