package catalog

import (
	"strconv"
	"strings"
)

// Coercion rules for free-text form input. Numeric parsing never fails the
// operation: invalid input falls back to a safe default instead.

// CoerceCost parses a budgeted or actual cost. Invalid or empty input
// yields 0; negative values are clamped to 0.
func CoerceCost(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// CoerceDays parses an expected duration. Invalid input or anything below
// one day yields 1.
func CoerceDays(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

// SplitTrades turns a comma-separated trade string into a trimmed sequence,
// dropping empty segments. Duplicates are kept; order is display order.
func SplitTrades(raw string) []string {
	var trades []string
	for _, part := range strings.Split(raw, ",") {
		if trade := strings.TrimSpace(part); trade != "" {
			trades = append(trades, trade)
		}
	}
	return trades
}
