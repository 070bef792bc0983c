package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"100", "$100"},
		{"1000", "$1,000"},
		{"1234567", "$1,234,567"},
		{"-1234567", "-$1,234,567"},
		{"81462000000", "$81,462,000,000"},
		{"2500.00", "$2,500"},
		{"1500.5", "$1,500.5"},
		{"-1500.5", "-$1,500.5"},
		{"-0.001", "$0"},
		{"0.05", "$0.05"},
		{"1234.567", "$1,234.57"},
		{"12345678901234567.89", "$12,345,678,901,234,567.89"},
		{"99999999999999999999", "$99,999,999,999,999,999,999"},
		{"-100000000000000000000.1", "-$100,000,000,000,000,000,000.1"},
		{"9223372036854775807", "$9,223,372,036,854,775,807"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.in)))
		})
	}
}
