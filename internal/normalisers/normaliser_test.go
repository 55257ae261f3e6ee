package normalisers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// TestString tests symbol-string parsing into canonical form
func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		base  int
		want  domain.Number
	}{
		{
			"hex with fraction",
			"FF0.8", 16,
			domain.Number{Base: 16, Integer: []int{15, 15, 0}, Fraction: []int{8}},
		},
		{
			"lowercase hex folds",
			"ff0.8", 16,
			domain.Number{Base: 16, Integer: []int{15, 15, 0}, Fraction: []int{8}},
		},
		{
			"whitespace stripped",
			" 40 80.5 ", 10,
			domain.Number{Base: 10, Integer: []int{4, 0, 8, 0}, Fraction: []int{5}},
		},
		{
			"negative",
			"-12", 10,
			domain.Number{Base: 10, Negative: true, Integer: []int{1, 2}},
		},
		{
			"explicit positive",
			"+7", 8,
			domain.Number{Base: 8, Integer: []int{7}},
		},
		{
			"fraction only",
			".5", 10,
			domain.Number{Base: 10, Fraction: []int{5}},
		},
		{
			"integer only trailing point",
			"5.", 10,
			domain.Number{Base: 10, Integer: []int{5}},
		},
		{
			"recurring block",
			"0.[3]", 10,
			domain.Number{Base: 10, Integer: []int{0}, Recurring: []int{3}},
		},
		{
			"prefix and recurring",
			"0.5[3]", 10,
			domain.Number{Base: 10, Integer: []int{0}, Fraction: []int{5}, Recurring: []int{3}},
		},
		{
			"base above case boundary keeps case",
			"aA", 62,
			domain.Number{Base: 62, Integer: []int{36, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.input, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestString_Errors tests rejection of malformed and invalid input
func TestString_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		base    int
		wantErr error
	}{
		{"base below two", "101", 1, domain.ErrInvalidBase},
		{"two radix points", "1.2.3", 10, domain.ErrMalformedNumber},
		{"empty", "", 10, domain.ErrMalformedNumber},
		{"whitespace only", "  ", 10, domain.ErrMalformedNumber},
		{"bare point", ".", 10, domain.ErrMalformedNumber},
		{"bare sign", "-", 10, domain.ErrMalformedNumber},
		{"digit at base", "F", 15, domain.ErrInvalidDigit},
		{"junk symbol", "1!2", 10, domain.ErrInvalidDigit},
		{"recurring before point", "1[2].3", 10, domain.ErrMalformedNumber},
		{"unterminated recurring", "0.[3", 10, domain.ErrMalformedNumber},
		{"empty recurring", "0.[]", 10, domain.ErrMalformedNumber},
		{"digits after recurring", "0.[3]5", 10, domain.ErrMalformedNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := String(tt.input, tt.base)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestSeq tests digit-sequence parsing into canonical form
func TestSeq(t *testing.T) {
	tests := []struct {
		name  string
		input domain.Seq
		base  int
		want  domain.Number
	}{
		{
			"hex with fraction",
			domain.Seq{15, 15, 0, domain.Point, 8}, 16,
			domain.Number{Base: 16, Integer: []int{15, 15, 0}, Fraction: []int{8}},
		},
		{
			"integer only",
			domain.Seq{4, 5, 6, 7}, 16,
			domain.Number{Base: 16, Integer: []int{4, 5, 6, 7}},
		},
		{
			"negative with recurring",
			domain.Seq{domain.Minus, 0, domain.Point, domain.Open, 3, domain.Close}, 10,
			domain.Number{Base: 10, Negative: true, Integer: []int{0}, Recurring: []int{3}},
		},
		{
			"large base digits",
			domain.Seq{120, 5}, 128,
			domain.Number{Base: 128, Integer: []int{120, 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Seq(tt.input, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSeq_Errors tests rejection of malformed and invalid sequences
func TestSeq_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.Seq
		base    int
		wantErr error
	}{
		{"base below two", domain.Seq{0}, 0, domain.ErrInvalidBase},
		{"empty", domain.Seq{}, 10, domain.ErrMalformedNumber},
		{"two points", domain.Seq{1, domain.Point, 2, domain.Point}, 10, domain.ErrMalformedNumber},
		{"digit at base", domain.Seq{8, 1, 15, 9}, 15, domain.ErrInvalidDigit},
		{"sign in the middle", domain.Seq{1, domain.Minus, 2}, 10, domain.ErrMalformedNumber},
		{"open before point", domain.Seq{domain.Open, 1, domain.Close}, 10, domain.ErrMalformedNumber},
		{"unterminated recurring", domain.Seq{0, domain.Point, domain.Open, 3}, 10, domain.ErrMalformedNumber},
		{"empty recurring", domain.Seq{0, domain.Point, domain.Open, domain.Close}, 10, domain.ErrMalformedNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Seq(tt.input, tt.base)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestFloat tests exact decomposition of native floats
func TestFloat(t *testing.T) {
	t.Run("half is exact", func(t *testing.T) {
		n, err := Float(0.5)
		require.NoError(t, err)
		assert.Equal(t, domain.Number{Base: 10, Integer: []int{0}, Fraction: []int{5}}, n)
	})

	t.Run("integer", func(t *testing.T) {
		n, err := Float(4080)
		require.NoError(t, err)
		assert.Equal(t, []int{4, 0, 8, 0}, n.Integer)
		assert.Empty(t, n.Fraction)
	})

	t.Run("negative", func(t *testing.T) {
		n, err := Float(-2.25)
		require.NoError(t, err)
		assert.True(t, n.Negative)
		assert.Equal(t, []int{2}, n.Integer)
		assert.Equal(t, []int{2, 5}, n.Fraction)
	})

	t.Run("binary value not decimal literal", func(t *testing.T) {
		// 0.1 is not representable in binary; the exact expansion is the
		// long decimal of the nearest double, ending in ...5625.
		n, err := Float(0.1)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, n.Integer)
		assert.Equal(t, 55, len(n.Fraction))
		assert.Equal(t, []int{1, 0, 0, 0}, n.Fraction[:4])
		assert.Equal(t, []int{5, 6, 2, 5}, n.Fraction[len(n.Fraction)-4:])
	})

	t.Run("not finite", func(t *testing.T) {
		_, err := Float(math.NaN())
		assert.ErrorIs(t, err, domain.ErrMalformedNumber)

		_, err = Float(math.Inf(1))
		assert.ErrorIs(t, err, domain.ErrMalformedNumber)
	})
}
