// Package timeutil provides calendar-date helpers for the registry.
// Course start dates are whole days. A time.Time passed in is read as the
// calendar date on its own clock, whatever zone it carries, and that date is
// then placed at midnight in Location.
// No external dependencies - uses only standard library.
package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the layout used for dates in seed files and printouts.
const DateLayout = "2006-01-02"

// Location is the timezone that defines "today". Set once at startup from config.
var Location = time.Local

// now is replaced in tests.
var now = time.Now

// Now returns the current time in Location.
func Now() time.Time {
	return now().In(Location)
}

// Today returns the start of the current day in Location.
func Today() time.Time {
	return StartOfDay(Now())
}

// Date creates a date (midnight) in Location.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, Location)
}

// StartOfDay returns midnight in Location of the calendar day t shows.
// The date is not shifted into Location first: 2027-03-10 00:00 UTC stays
// 2027-03-10 even when Location is behind UTC.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location)
}

// IsSameDay checks if two times show the same calendar day.
func IsSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsBeforeToday reports whether t falls on a day strictly before today.
func IsBeforeToday(t time.Time) bool {
	return StartOfDay(t).Before(Today())
}

// AddYears returns the same calendar day years later.
func AddYears(t time.Time, years int) time.Time {
	return StartOfDay(t).AddDate(years, 0, 0)
}

// FormatDate formats the calendar day t shows as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as a date in Location.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

// LoadLocation resolves a timezone name, falling back to time.Local for "" or "Local".
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}
