// Package format renders money and schedule figures for display.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Money renders a dollar amount with thousands separators. Whole amounts
// drop the cents.
func Money(v float64) string {
	if v == math.Trunc(v) {
		return "$" + printer.Sprint(number.Decimal(int64(v)))
	}
	return "$" + printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// SignedMoney renders a variance with an explicit sign, the convention
// being that positive means over budget.
func SignedMoney(v float64) string {
	if v >= 0 {
		return "+" + Money(v)
	}
	return "-" + Money(-v)
}

// Days renders a day count, e.g. "16d".
func Days(d int) string {
	return fmt.Sprintf("%dd", d)
}
