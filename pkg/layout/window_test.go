package layout

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestWindowMonthShape(t *testing.T) {
	// 2025-03-15 is a Saturday; the padded March 2025 grid runs from
	// Monday Feb 24 through Sunday Mar 30, 35 days in 5 rows.
	window := Window(date(2025, time.March, 15), ModeMonth)

	if len(window) != 35 {
		t.Fatalf("window length = %d, want 35", len(window))
	}
	if !window[0].Equal(date(2025, time.February, 24)) {
		t.Errorf("window starts %v, want 2025-02-24", window[0])
	}
	if !window[34].Equal(date(2025, time.March, 30)) {
		t.Errorf("window ends %v, want 2025-03-30", window[34])
	}
	if window[0].Weekday() != time.Monday {
		t.Errorf("window starts on %v, want Monday", window[0].Weekday())
	}
}

func TestWindowMonthProperties(t *testing.T) {
	focuses := []time.Time{
		date(2025, time.January, 1),
		date(2025, time.February, 28),
		date(2024, time.February, 29),
		date(2025, time.June, 30),
		date(2025, time.December, 31),
		date(2025, time.September, 1), // month starting on Monday
	}
	for _, focus := range focuses {
		window := Window(focus, ModeMonth)

		if len(window)%7 != 0 {
			t.Errorf("focus %v: length %d not a multiple of 7", focus, len(window))
		}
		if window[0].Weekday() != time.Monday {
			t.Errorf("focus %v: starts on %v", focus, window[0].Weekday())
		}
		if window[len(window)-1].Weekday() != time.Sunday {
			t.Errorf("focus %v: ends on %v", focus, window[len(window)-1].Weekday())
		}

		// Every day of the focused month must be present, consecutively.
		seen := make(map[string]bool, len(window))
		for i, d := range window {
			seen[d.Format("2006-01-02")] = true
			if i > 0 {
				if got := window[i].Sub(window[i-1]).Hours(); got < 23 || got > 25 {
					t.Errorf("focus %v: non-consecutive days at %d", focus, i)
				}
			}
		}
		for d := date(focus.Year(), focus.Month(), 1); d.Month() == focus.Month(); d = d.AddDate(0, 0, 1) {
			if !seen[d.Format("2006-01-02")] {
				t.Errorf("focus %v: missing day %v", focus, d)
			}
		}
	}
}

func TestWindowWeek(t *testing.T) {
	window := Window(date(2025, time.March, 15), ModeWeek)

	if len(window) != 7 {
		t.Fatalf("week window length = %d", len(window))
	}
	if !window[0].Equal(date(2025, time.March, 10)) {
		t.Errorf("week starts %v, want Monday 2025-03-10", window[0])
	}
	if !window[6].Equal(date(2025, time.March, 16)) {
		t.Errorf("week ends %v, want Sunday 2025-03-16", window[6])
	}

	// A Monday focus is its own week start.
	window = Window(date(2025, time.March, 10), ModeWeek)
	if !window[0].Equal(date(2025, time.March, 10)) {
		t.Errorf("monday focus: week starts %v", window[0])
	}
}

func TestDaysFlags(t *testing.T) {
	focus := date(2025, time.March, 15)
	today := date(2025, time.March, 15)
	days := Days(Window(focus, ModeMonth), today, focus)

	var todays, past, inMonth int
	for _, d := range days {
		if d.IsToday {
			todays++
			if !d.Date.Equal(today) {
				t.Errorf("IsToday on %v", d.Date)
			}
		}
		if d.IsPast {
			past++
			if !d.Date.Before(today) {
				t.Errorf("IsPast on %v", d.Date)
			}
		}
		if d.InFocusedMonth {
			inMonth++
			if d.Date.Month() != time.March {
				t.Errorf("InFocusedMonth on %v", d.Date)
			}
		}
	}
	if todays != 1 {
		t.Errorf("IsToday count = %d", todays)
	}
	// Feb 24 .. Mar 14: 5 leading February days plus 14 March days.
	if past != 19 {
		t.Errorf("IsPast count = %d, want 19", past)
	}
	if inMonth != 31 {
		t.Errorf("InFocusedMonth count = %d, want 31", inMonth)
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode("week"); !ok || m != ModeWeek {
		t.Errorf("ParseMode(week) = %v, %v", m, ok)
	}
	if m, ok := ParseMode(""); !ok || m != ModeMonth {
		t.Errorf("ParseMode(empty) = %v, %v", m, ok)
	}
	if _, ok := ParseMode("fortnight"); ok {
		t.Error("ParseMode accepted unknown mode")
	}
}
