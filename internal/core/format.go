package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// FormatCurrency renders an amount as US dollars with thousands separators,
// e.g. 1234567 → "$1,234,567" and -1500.5 → "-$1,500.5".
// Whole amounts print without decimals; others keep at most two.
// Digits are taken from the decimal itself, so no precision is lost.
func FormatCurrency(amount decimal.Decimal) string {
	amount = amount.Round(2)
	abs := amount.Abs()

	digits := groupThousands(abs.Truncate(0))
	if !abs.IsInteger() {
		fixed := abs.StringFixed(2)
		digits += strings.TrimRight(fixed[strings.IndexByte(fixed, '.'):], "0")
	}

	if amount.IsNegative() {
		return "-$" + digits
	}
	return "$" + digits
}

// groupThousands formats a non-negative integral decimal with comma grouping.
func groupThousands(whole decimal.Decimal) string {
	if whole.LessThanOrEqual(maxInt64) {
		return message.NewPrinter(language.English).Sprintf("%d", whole.IntPart())
	}

	s := whole.String()
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
