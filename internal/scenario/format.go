package scenario

import (
	"fmt"
	"strconv"
)

// Money renders a truncated currency string with k/m/bn suffixes.
func Money(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("£%.1fbn", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("£%.1fm", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("£%.0fk", v/1e3)
	default:
		return fmt.Sprintf("£%.0f", v)
	}
}

// Percent renders a fraction as a whole percentage.
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// Count renders a whole number with thousands separators.
func Count(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
