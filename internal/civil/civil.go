// Package civil provides calendar arithmetic on the civil (wall-clock)
// components of time.Time values, independent of their zone offsets.
package civil

import "time"

// dateOf pins t's civil date to midnight UTC so that date subtraction
// is exact regardless of t's own offset.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole civil days from a's date to
// b's date, each interpreted in its own location. Negative when b's
// date is earlier than a's.
func DaysBetween(a, b time.Time) int {
	return int(dateOf(b).Sub(dateOf(a)) / (24 * time.Hour))
}

// WeekdayDistance returns how many days forward from weekday `from` the
// next `to` lies, in 0..6. Adding 7 before the remainder keeps the
// result non-negative when `to` is numerically behind `from`.
func WeekdayDistance(from, to time.Weekday) int {
	return (int(to) - int(from) + 7) % 7
}

// TimeOfDayAfter reports whether a's wall-clock time of day is strictly
// later than b's, down to nanoseconds.
func TimeOfDayAfter(a, b time.Time) bool {
	ah, am, as := a.Clock()
	bh, bm, bs := b.Clock()
	switch {
	case ah != bh:
		return ah > bh
	case am != bm:
		return am > bm
	case as != bs:
		return as > bs
	}
	return a.Nanosecond() > b.Nanosecond()
}
