package stats

import "time"

// dayKeyLayout keeps keys lexicographically ordered in date order.
const dayKeyLayout = "2006-01-02"

// DayKey collapses an instant to its calendar-day key in local time. Every
// per-day lookup in the engine joins on this key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// DaysBefore shifts an instant back by n calendar days. AddDate is calendar
// arithmetic, so month and year boundaries and DST transitions are handled.
func DaysBefore(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}
