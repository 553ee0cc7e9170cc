package domain

import "time"

// CalendarDate returns the calendar date of t as observed in loc, expressed as
// midnight UTC so dates compare with Equal regardless of the source zone.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date in DateLayout
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// ParseDate parses a DateLayout string into a calendar date
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
