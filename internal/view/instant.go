package view

import (
	"strings"
	"time"
)

// Layouts observed in the upstream export. The sheet is not guaranteed to
// zero-pad, so lexicographic comparison of the raw strings is not safe.
var (
	dateLayouts = []string{"2006-01-02", "02/01/2006", "2/1/2006", "02-01-2006"}
	timeLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM"}
)

// parseInstant combines a date and a time string into one chronological
// instant. ok is false when the date cannot be parsed under any known
// layout; an unparseable time still yields the start of the day.
func parseInstant(date, clock string) (time.Time, bool) {
	var day time.Time
	parsed := false
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(date)); err == nil {
			day = t
			parsed = true
			break
		}
	}
	if !parsed {
		return time.Time{}, false
	}

	if offset, ok := parseClock(clock); ok {
		return day.Add(offset), true
	}
	return day, true
}

// parseClock reads a time-of-day string as an offset from midnight. ok is
// false when no known layout matches.
func parseClock(clock string) (time.Duration, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(strings.TrimSpace(clock))); err == nil {
			return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second, true
		}
	}
	return 0, false
}
