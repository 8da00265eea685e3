// Package format holds the display helpers shared by the dashboard readers:
// currency strings, dates, pagination windows and chart axis labels.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount in cents as US dollars, e.g. 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	units := decimal.New(cents, -2)
	sign := ""
	if units.IsNegative() {
		sign = "-"
		units = units.Abs()
	}
	fixed := units.StringFixed(2)
	frac := fixed[strings.IndexByte(fixed, '.')+1:]
	return sign + "$" + printer.Sprintf("%d", units.IntPart()) + "." + frac
}

// CentsToUnits converts minor units to major units, e.g. 123456 -> 1234.56.
func CentsToUnits(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}
