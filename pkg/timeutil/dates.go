// Package timeutil holds the small pieces of calendar date arithmetic shared
// by the layout engine, the API client, and the printers.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutISO is the wire format for all dates exchanged with the API.
	LayoutISO = "2006-01-02"
)

// ParseISO parses a YYYY-MM-DD string into a midnight local date.
func ParseISO(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutISO, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: invalid date %q: %w", s, err)
	}
	return t, nil
}

// Date truncates t to a midnight date in its own location.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfWeek returns the Monday of the week containing t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	d := Date(t)
	// time.Weekday counts from Sunday; shift so Monday == 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of t's month, at midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month, at midnight.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// DaysBetween counts whole days from a to b (dates, not durations).
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}

// RelativeDay renders a date relative to today: "hoy", "mañana", "en 3d",
// or "hace 2d" for past dates.
func RelativeDay(d, today time.Time) string {
	delta := DaysBetween(today, d)
	switch {
	case delta == 0:
		return "hoy"
	case delta == 1:
		return "mañana"
	case delta > 1:
		return fmt.Sprintf("en %dd", delta)
	default:
		return fmt.Sprintf("hace %dd", -delta)
	}
}
