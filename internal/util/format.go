package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	decimalPlaces = 2
	groupSize     = 3
)

// FormatMoney renders value with two decimal places, using decimalSep between
// units and cents and thousand between each group of three digits.
func FormatMoney(value decimal.Decimal, thousand, decimalSep string) string {
	fixed := value.Abs().StringFixed(decimalPlaces)
	units, cents, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if value.Round(decimalPlaces).IsNegative() {
		b.WriteString("-")
	}

	// for each 3 digits put the thousand separator
	lead := len(units) % groupSize
	if lead == 0 {
		lead = groupSize
	}
	b.WriteString(units[:lead])
	for i := lead; i < len(units); i += groupSize {
		b.WriteString(thousand)
		b.WriteString(units[i : i+groupSize])
	}

	b.WriteString(decimalSep)
	b.WriteString(cents)

	return b.String()
}
