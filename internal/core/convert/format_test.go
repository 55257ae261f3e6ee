package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// TestAsSeq tests sequence rendering with sentinel tokens
func TestAsSeq(t *testing.T) {
	tests := []struct {
		name      string
		digits    domain.Digits
		recurring bool
		want      domain.Seq
	}{
		{
			"integer only",
			domain.Digits{Base: 10, Integer: []int{4, 2}, RecurringStart: domain.NoRecurring},
			true,
			domain.Seq{4, 2},
		},
		{
			"with fraction",
			domain.Digits{Base: 10, Integer: []int{4, 0, 8, 0}, Fraction: []int{5}, RecurringStart: domain.NoRecurring},
			true,
			domain.Seq{4, 0, 8, 0, domain.Point, 5},
		},
		{
			"recurring bracketed",
			domain.Digits{Base: 8, Integer: []int{0}, Fraction: []int{1, 4, 6, 3}, RecurringStart: 0},
			true,
			domain.Seq{0, domain.Point, domain.Open, 1, 4, 6, 3, domain.Close},
		},
		{
			"recurring with prefix",
			domain.Digits{Base: 8, Integer: []int{0}, Fraction: []int{0, 6, 3, 1, 4}, RecurringStart: 1},
			true,
			domain.Seq{0, domain.Point, 0, domain.Open, 6, 3, 1, 4, domain.Close},
		},
		{
			"recurring suppressed",
			domain.Digits{Base: 8, Integer: []int{0}, Fraction: []int{1, 4, 6, 3}, RecurringStart: 0},
			false,
			domain.Seq{0, domain.Point, 1, 4, 6, 3},
		},
		{
			"negative",
			domain.Digits{Base: 10, Negative: true, Integer: []int{1}, Fraction: []int{5}, RecurringStart: domain.NoRecurring},
			true,
			domain.Seq{domain.Minus, 1, domain.Point, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AsSeq(tt.digits, tt.recurring))
		})
	}
}

// TestAsString tests alphabet-encoded string rendering
func TestAsString(t *testing.T) {
	tests := []struct {
		name      string
		digits    domain.Digits
		recurring bool
		want      string
	}{
		{
			"hex digits",
			domain.Digits{Base: 16, Integer: []int{15, 15, 0}, Fraction: []int{8}, RecurringStart: domain.NoRecurring},
			true,
			"FF0.8",
		},
		{
			"recurring bracketed",
			domain.Digits{Base: 10, Integer: []int{0}, Fraction: []int{3}, RecurringStart: 0},
			true,
			"0.[3]",
		},
		{
			"recurring suppressed",
			domain.Digits{Base: 10, Integer: []int{0}, Fraction: []int{3, 3, 3}, RecurringStart: 0},
			false,
			"0.333",
		},
		{
			"negative integer",
			domain.Digits{Base: 2, Negative: true, Integer: []int{1, 0, 1}, RecurringStart: domain.NoRecurring},
			true,
			"-101",
		},
		{
			"base beyond letters",
			domain.Digits{Base: 99, Integer: []int{98}, RecurringStart: domain.NoRecurring},
			true,
			string(rune(98 + 61)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsString(tt.digits, tt.recurring)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
