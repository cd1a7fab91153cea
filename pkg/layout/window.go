// Package layout computes where calendar entries go: which days are visible,
// which entries appear on them, how many columns each one spans, and which
// vertical track keeps concurrent entries from colliding. Everything here is
// a pure function of its inputs and is recomputed from scratch on every
// render; there is no retained state to go stale.
package layout

import (
	"time"

	"github.com/antoniocanovasleon/iberfoods/pkg/timeutil"
)

// ViewMode selects the visible window shape.
type ViewMode int

const (
	// ModeMonth shows the focused month padded to whole Monday–Sunday weeks.
	ModeMonth ViewMode = iota
	// ModeWeek shows the single week containing the focus date.
	ModeWeek
)

// ParseMode maps the CLI's view names onto a ViewMode.
func ParseMode(s string) (ViewMode, bool) {
	switch s {
	case "month", "mes", "":
		return ModeMonth, true
	case "week", "semana":
		return ModeWeek, true
	}
	return ModeMonth, false
}

// Window returns the ordered days to display for the given focus date.
//
// Month mode extends the focused month backward to the nearest Monday and
// forward to the following Sunday, so the result is always a whole number
// of weeks. Week mode is exactly the Monday–Sunday week of focus.
func Window(focus time.Time, mode ViewMode) []time.Time {
	var first, last time.Time
	switch mode {
	case ModeWeek:
		first = timeutil.StartOfWeek(focus)
		last = first.AddDate(0, 0, 6)
	default:
		first = timeutil.StartOfWeek(timeutil.StartOfMonth(focus))
		monthEnd := timeutil.EndOfMonth(focus)
		last = timeutil.StartOfWeek(monthEnd).AddDate(0, 0, 6)
	}

	n := timeutil.DaysBetween(first, last) + 1
	days := make([]time.Time, 0, n)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Day is one visible calendar cell with its derived display flags. It has no
// identity of its own and is rebuilt on every render.
type Day struct {
	Date           time.Time
	IsToday        bool
	IsPast         bool
	InFocusedMonth bool
}

// Days derives display flags for a window relative to today and the focused
// date.
func Days(window []time.Time, today, focus time.Time) []Day {
	t := timeutil.Date(today)
	out := make([]Day, len(window))
	for i, d := range window {
		out[i] = Day{
			Date:           d,
			IsToday:        timeutil.SameDay(d, t),
			IsPast:         d.Before(t),
			InFocusedMonth: d.Month() == focus.Month() && d.Year() == focus.Year(),
		}
	}
	return out
}
