package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/antoniocanovasleon/iberfoods/pkg/entry"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestExportAllDayEvents(t *testing.T) {
	entries := []entry.Entry{
		{
			ID:       "e-1",
			Kind:     entry.KindEvent,
			Title:    "Feria Alimentaria",
			TypeName: "Feria",
			Start:    day(2025, time.March, 10),
			End:      day(2025, time.March, 12),
		},
	}

	var b strings.Builder
	if err := Export(&b, entries); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"UID:e-1@iberfoods",
		"SUMMARY:Feria Alimentaria",
		"DTSTART;VALUE=DATE:20250310",
		"DTEND;VALUE=DATE:20250313", // exclusive end, one past the last day
		"CATEGORIES:Feria",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestExportReminderSummary(t *testing.T) {
	entries := []entry.Entry{
		{
			ID:       "e-1@2025-03-09",
			Kind:     entry.KindReminder,
			Title:    "Confirmar stand",
			ParentID: "e-1",
			Start:    day(2025, time.March, 9),
			End:      day(2025, time.March, 9),
		},
	}

	var b strings.Builder
	if err := Export(&b, entries); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, "SUMMARY:Recordatorio: Confirmar stand") {
		t.Errorf("reminder summary not prefixed:\n%s", out)
	}
	if !strings.Contains(out, "DTEND;VALUE=DATE:20250310") {
		t.Errorf("one-day reminder must end the next day:\n%s", out)
	}
}
