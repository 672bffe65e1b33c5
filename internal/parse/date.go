package parse

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Excel serial day counts start at this epoch (the 1900 date system with
// its historical leap-year offset already folded in).
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order. ISO forms first, then the month-first
// slash and dash forms the upstream sheets produce. Day-first forms come
// last: an ambiguous date reads month-first, a date whose first component
// cannot be a month falls through to day-first instead of degrading.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"01-02-2006",
	"1/2/06 15:04",
	"1/2/06",
	"01-02-06",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"2/1/06",
}

// Date parses a raw date cell. Missing cells yield (nil, true); unparseable
// content yields (nil, false). A bare number is read as an Excel serial day
// count, which is how unformatted date cells surface.
func Date(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(serial) && !math.IsInf(serial, 0) {
		t := ExcelDate(serial)
		return &t, true
	}
	return nil, false
}

// ExcelDate converts an Excel serial day count to a timestamp in UTC.
func ExcelDate(serial float64) time.Time {
	days := math.Floor(serial)
	secs := math.Round((serial - days) * 86400)
	return excelEpoch.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second)
}
