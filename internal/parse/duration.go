// Package parse converts raw spreadsheet cells into typed values. Every
// function degrades malformed input to a safe default instead of returning
// an error; the boolean result reports whether the cell parsed cleanly so
// ingestion can count degraded cells.
package parse

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Hours converts a raw duration cell to decimal hours. Encodings are tried
// in order: missing (0), a colon-separated "H:M:S" string with up to three
// integer components, a time-of-day value, a plain number of hours. The
// first return is always non-negative and finite.
func Hours(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		if strings.Contains(s, ":") {
			return clockHours(s)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return clampHours(f)
	case time.Time:
		return float64(x.Hour()) + float64(x.Minute())/60 + float64(x.Second())/3600, true
	case time.Duration:
		return clampHours(x.Hours())
	case float64:
		return clampHours(x)
	case float32:
		return clampHours(float64(x))
	case int:
		return clampHours(float64(x))
	case int64:
		return clampHours(float64(x))
	default:
		return 0, false
	}
}

// clockHours parses "H:M:S", padding missing trailing components with 0 and
// ignoring anything past the third.
func clockHours(s string) (float64, bool) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}

	var comps [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, false
		}
		comps[i] = n
	}
	return clampHours(float64(comps[0]) + float64(comps[1])/60 + float64(comps[2])/3600)
}

func clampHours(h float64) (float64, bool) {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0, false
	}
	return h, true
}
