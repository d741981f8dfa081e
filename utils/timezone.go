package utils

import (
	"time"
)

// DayLayout is the canonical calendar-day key format. Every derived record is
// keyed by a day string in this layout, resolved in the account's timezone.
const DayLayout = "2006-01-02"

// ResolveTimezone returns the location of an IANA timezone name, falling back
// to the given default when the value is absent or invalid. When the fallback
// itself does not resolve, UTC is used.
func ResolveTimezone(value, fallback string) *time.Location {
	if value != "" {
		if loc, err := time.LoadLocation(value); err == nil {
			return loc
		}
	}
	if fallback != "" {
		if loc, err := time.LoadLocation(fallback); err == nil {
			return loc
		}
	}
	return time.UTC
}

// DayKey formats an instant as a calendar-day key in the given location.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// ParseDay parses a calendar-day key back into a UTC midnight instant.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(DayLayout, day)
}

// DayStart returns the midnight instant of a calendar-day key in the given
// location.
func DayStart(day string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayLayout, day, loc)
}

// AddDays shifts a calendar-day key by n days. The key must be valid.
func AddDays(day string, n int) string {
	t, err := ParseDay(day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(DayLayout)
}

// DayOffset returns the number of whole days from one day key to another.
func DayOffset(from, to string) int {
	a, errA := ParseDay(from)
	b, errB := ParseDay(to)
	if errA != nil || errB != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

// WeekStart returns the Sunday on or before the given day key.
func WeekStart(day string) string {
	t, err := ParseDay(day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, -int(t.Weekday())).Format(DayLayout)
}
