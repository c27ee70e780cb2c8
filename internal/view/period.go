package view

import "time"

// IsCurrentMonth reports whether a 1-12 month number matches the month of
// the supplied "now". It tags records for the highlight section; it never
// excludes anything from the main list.
func IsCurrentMonth(month int, now time.Time) bool {
	return month == int(now.Month())
}
