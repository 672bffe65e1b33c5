// Package format renders numbers for the presentation boundary: dot
// thousands separators with a decimal comma, and auto-scaled percentages.
// KPI computation never goes through here.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number renders a value with dot-grouped thousands and a decimal comma,
// e.g. 1234567.89 with two decimals becomes "1.234.567,89". Missing values
// render as 0; anything that cannot be coerced to a number is returned as
// its plain stringification.
func Number(v any, decimals int) string {
	f, ok := coerce(v)
	if !ok {
		return fmt.Sprint(v)
	}

	s := strconv.FormatFloat(f, 'f', decimals, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	if hasFrac {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// Percent renders a ratio or percentage with a trailing percent sign. Scale
// is auto-detected the same way the completion classifier does it: an
// absolute value at most 1 is a fraction and is multiplied by 100. The
// decimal separator stays a dot. Values that cannot be coerced are returned
// as their plain stringification.
func Percent(v any, decimals int) string {
	f, ok := coerce(v)
	if !ok {
		return fmt.Sprint(v)
	}
	if math.Abs(f) <= 1 {
		f *= 100
	}
	return strconv.FormatFloat(f, 'f', decimals, 64) + "%"
}

// coerce turns the formatter's inputs into a float64. Missing values (nil,
// blank strings, NaN) coerce to 0.
func coerce(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case float64:
		if math.IsNaN(x) {
			return 0, true
		}
		if math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case float32:
		return coerce(float64(x))
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
