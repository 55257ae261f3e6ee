package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// TestEncodeDigit tests the value-to-symbol mapping across all ranges
func TestEncodeDigit(t *testing.T) {
	tests := []struct {
		name string
		v    int
		base int
		want rune
	}{
		{"zero", 0, 10, '0'},
		{"nine", 9, 10, '9'},
		{"ten is A", 10, 16, 'A'},
		{"fifteen is F", 15, 16, 'F'},
		{"thirty-five is Z", 35, 36, 'Z'},
		{"thirty-six is a", 36, 62, 'a'},
		{"sixty-one is z", 61, 62, 'z'},
		{"sixty-two starts at 123", 62, 99, '{'},
		{"ninety-eight", 98, 99, rune(98 + 61)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeDigit(tt.v, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestEncodeDigit_OutOfRange tests rejection of values at or above the base
func TestEncodeDigit_OutOfRange(t *testing.T) {
	_, err := EncodeDigit(16, 16)
	assert.ErrorIs(t, err, domain.ErrInvalidDigit)

	_, err = EncodeDigit(-1, 16)
	assert.ErrorIs(t, err, domain.ErrInvalidDigit)
}

// TestDecodeSymbol tests the symbol-to-value mapping across all ranges
func TestDecodeSymbol(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		base int
		want int
	}{
		{"digit zero", '0', 2, 0},
		{"digit nine", '9', 10, 9},
		{"upper A", 'A', 16, 10},
		{"upper Z", 'Z', 36, 35},
		{"lower a", 'a', 62, 36},
		{"lower z", 'z', 62, 61},
		{"code point 123", '{', 99, 62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSymbol(tt.r, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestDecodeSymbol_Errors tests out-of-alphabet runes and over-base values
func TestDecodeSymbol_Errors(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		base int
	}{
		{"value at base", 'A', 10},
		{"lowercase in hex", 'f', 16},
		{"punctuation", '!', 36},
		{"bracket is not a digit", '[', 99},
		{"space", ' ', 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSymbol(tt.r, tt.base)
			assert.ErrorIs(t, err, domain.ErrInvalidDigit)
		})
	}
}

// TestAlphabet_RoundTrip tests encode/decode symmetry over a wide range
func TestAlphabet_RoundTrip(t *testing.T) {
	const base = 500
	for v := 0; v < base; v++ {
		r, err := EncodeDigit(v, base)
		require.NoError(t, err)
		got, err := DecodeSymbol(r, base)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
