// Package ics exports calendar entries as an iCalendar feed so the shared
// business calendar can be subscribed to from phones and mail clients.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/antoniocanovasleon/iberfoods/pkg/entry"
)

const prodID = "-//iberfoods//calendario//ES"

// Export writes entries as all-day VEVENTs. DTEND follows the iCalendar
// convention of being exclusive, so a one-day entry ends the next morning.
func Export(w io.Writer, entries []entry.Entry) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	now := time.Now()
	for _, e := range entries {
		ev := cal.AddEvent(fmt.Sprintf("%s@iberfoods", e.ID))
		ev.SetDtStampTime(now)
		ev.SetSummary(summary(e))
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.TypeName != "" {
			ev.SetProperty(ical.ComponentPropertyCategories, e.TypeName)
		}
		ev.SetAllDayStartAt(e.Start)
		ev.SetAllDayEndAt(e.End.AddDate(0, 0, 1))
	}

	return cal.SerializeTo(w)
}

func summary(e entry.Entry) string {
	if e.IsReminder() {
		return fmt.Sprintf("%s: %s", entry.ReminderTypeName, e.Title)
	}
	return e.Title
}
