package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		thousand string
		decimal  string
		expected string
	}{
		{
			name:     "positive value with default separators",
			value:    "12345.67",
			thousand: ".",
			decimal:  ",",
			expected: "12.345,67",
		},
		{
			name:     "negative value with default separators",
			value:    "-12345.67",
			thousand: ".",
			decimal:  ",",
			expected: "-12.345,67",
		},
		{
			name:     "zero value",
			value:    "0",
			thousand: ".",
			decimal:  ",",
			expected: "0,00",
		},
		{
			name:     "value less than one",
			value:    "0.99",
			thousand: ".",
			decimal:  ",",
			expected: "0,99",
		},
		{
			name:     "value with custom separators",
			value:    "12345.67",
			thousand: ",",
			decimal:  ".",
			expected: "12,345.67",
		},
		{
			name:     "large value",
			value:    "12345678.9",
			thousand: ".",
			decimal:  ",",
			expected: "12.345.678,90",
		},
		{
			name:     "value with no thousands separator",
			value:    "1234567.5",
			thousand: "",
			decimal:  ".",
			expected: "1234567.50",
		},
		{
			name:     "exact group of three digits",
			value:    "123456",
			thousand: ",",
			decimal:  ".",
			expected: "123,456.00",
		},
		{
			name:     "rounds to two decimals",
			value:    "12.505",
			thousand: "",
			decimal:  ".",
			expected: "12.51",
		},
		{
			name:     "negative value rounding to zero",
			value:    "-0.001",
			thousand: "",
			decimal:  ".",
			expected: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatMoney(decimal.RequireFromString(tt.value), tt.thousand, tt.decimal)
			if result != tt.expected {
				t.Errorf("FormatMoney() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestFormatMoneyRoundsEnteredValue(t *testing.T) {
	// 2.675 is stored as 2.67499999...; the shortest form is what was typed
	got := FormatMoney(decimal.NewFromFloat(2.675), ",", ".")
	if got != "2.68" {
		t.Errorf("FormatMoney(2.675) = %q, want %q", got, "2.68")
	}
}
