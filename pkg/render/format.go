// Package render holds the report presenters and their shared formatting
// helpers.
package render

import (
	"math"
	"strconv"
	"strings"
)

// FormatMoney renders an amount as "$1,234" with thousands separators and no
// decimals, matching the report's summary style.
func FormatMoney(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := "$" + strings.Join(groups, ",")
	if neg {
		return "-" + out
	}
	return out
}

// FormatQuantity renders a movement quantity without trailing zeros.
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
