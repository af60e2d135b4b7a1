// utils/timeutil.go
package utils

import "time"

// All day-relative decisions in the system (trip span validation, activity
// bucketing) go through these helpers so bucket assignment and validation
// always agree on where a day starts.

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays shifts t by n calendar days, keeping the time of day.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the whole-day difference between the calendar days of
// from and to. Same day yields 0; to on the next calendar day yields 1.
func DaysBetween(from, to time.Time) int {
	return int(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// FormatLongDate renders t as a human-readable long date, e.g. "January 2, 2006".
// Used for the dates embedded in notification mail.
func FormatLongDate(t time.Time) string {
	return t.UTC().Format("January 2, 2006")
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
