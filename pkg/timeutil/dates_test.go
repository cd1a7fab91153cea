package timeutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestParseISO(t *testing.T) {
	got, err := ParseISO("2025-03-15")
	if err != nil {
		t.Fatalf("ParseISO: %v", err)
	}
	if !SameDay(got, date(2025, time.March, 15)) {
		t.Fatalf("ParseISO = %v", got)
	}

	if _, err := ParseISO("15/03/2025"); err == nil {
		t.Fatal("expected error for non-ISO input")
	}
	if _, err := ParseISO(""); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2025, time.March, 15), date(2025, time.March, 10)}, // Saturday
		{date(2025, time.March, 10), date(2025, time.March, 10)}, // Monday stays
		{date(2025, time.March, 16), date(2025, time.March, 10)}, // Sunday belongs to prior Monday
		{date(2025, time.March, 2), date(2025, time.February, 24)},
	}
	for _, tc := range cases {
		if got := StartOfWeek(tc.in); !got.Equal(tc.want) {
			t.Errorf("StartOfWeek(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	in := date(2025, time.February, 11)
	if got := StartOfMonth(in); !got.Equal(date(2025, time.February, 1)) {
		t.Errorf("StartOfMonth = %v", got)
	}
	if got := EndOfMonth(in); !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("EndOfMonth = %v", got)
	}
	if got := EndOfMonth(date(2024, time.February, 1)); !got.Equal(date(2024, time.February, 29)) {
		t.Errorf("EndOfMonth leap = %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(date(2025, time.March, 1), date(2025, time.March, 15)); got != 14 {
		t.Fatalf("DaysBetween = %d", got)
	}
	if got := DaysBetween(date(2025, time.March, 15), date(2025, time.March, 1)); got != -14 {
		t.Fatalf("DaysBetween reversed = %d", got)
	}
}

func TestRelativeDay(t *testing.T) {
	today := date(2025, time.March, 15)
	cases := map[string]time.Time{
		"hoy":     today,
		"mañana":  date(2025, time.March, 16),
		"en 3d":   date(2025, time.March, 18),
		"hace 2d": date(2025, time.March, 13),
	}
	for want, d := range cases {
		if got := RelativeDay(d, today); got != want {
			t.Errorf("RelativeDay(%v) = %q, want %q", d, got, want)
		}
	}
}
