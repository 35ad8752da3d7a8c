package draw

import (
	"strconv"
	"strings"
	"time"
)

// months maps Spanish month names to their calendar month
var months = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// ParseDate parses a draw date such as "Viernes 3 de enero de 2025" into a
// UTC calendar date. Token 1 is the day, token 3 the month name and token 5
// the year; trailing tokens are ignored.
// Returns false if the text does not have that shape or names an impossible day.
func ParseDate(text string) (time.Time, bool) {
	parts := strings.Fields(text)
	if len(parts) < 6 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}

	month, ok := months[strings.ToLower(parts[3])]
	if !ok {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(parts[5])
	if err != nil || year <= 0 {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days ("31 de febrero"), reject those
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}

	return t, true
}

// ParsedDate returns the draw's date as a calendar date.
func (d *Draw) ParsedDate() (time.Time, bool) {
	return ParseDate(d.Date)
}
