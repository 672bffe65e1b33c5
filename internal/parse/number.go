package parse

import (
	"math"
	"strconv"
	"strings"
)

// Float coerces a raw numeric cell. Missing cells are 0 by contract and
// count as clean; unparseable content degrades to 0. Both "1234.5" and the
// grouped comma-decimal "1.234,5" the sheets sometimes carry are accepted.
func Float(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if f, ok := parseFloat(s); ok {
		return f, true
	}
	if strings.Contains(s, ",") {
		alt := strings.ReplaceAll(s, ".", "")
		alt = strings.ReplaceAll(alt, ",", ".")
		if f, ok := parseFloat(alt); ok {
			return f, true
		}
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
