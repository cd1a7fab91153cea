// Package entry turns the API's calendar events and their nested reminders
// into one flat list of displayable entries, with each entry's visual type
// resolved exactly once. Downstream code (layout, printers) never goes back
// to the catalog.
package entry

import (
	"fmt"
	"time"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/timeutil"
)

// Kind discriminates the two entry variants.
type Kind int

const (
	// KindEvent is a primary dated record fetched from /calendar.
	KindEvent Kind = iota
	// KindReminder is a single-day pseudo-event derived from a primary
	// event's nested reminder list.
	KindReminder
)

// The synthetic type every reminder entry renders under.
const (
	ReminderTypeID   = "reminder"
	ReminderTypeName = "Recordatorio"
	ReminderColor    = "#f59e0b"

	// FallbackColor is used when an entry references a type missing from
	// the catalog (stale cache). Degraded but not fatal.
	FallbackColor = "#6366f1"

	// FallbackTypeName labels a reminder whose parent type is unknown.
	FallbackTypeName = "Evento"
)

// Entry is the uniform display projection consumed by the layout engine and
// the renderers. Start and End are inclusive midnight dates, Start ≤ End.
type Entry struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Start       time.Time
	End         time.Time

	// Resolved type, denormalized at normalization time.
	TypeID   string
	TypeName string
	Color    string
	Category string

	// ParentID backs a reminder to its primary event; empty for events.
	ParentID string
	// ParentTypeName is the parent's real type name, shown alongside the
	// synthetic reminder badge.
	ParentTypeName string

	LinkedOrderID string
	CustomFields  map[string]any
	OrderNumber   string
	Supplier      string
}

// IsReminder reports whether the entry is a reminder pseudo-event.
func (e Entry) IsReminder() bool { return e.Kind == KindReminder }

// Days is the inclusive day count of the entry's full range.
func (e Entry) Days() int { return timeutil.DaysBetween(e.Start, e.End) + 1 }

// Catalog indexes event types by id for constant-time resolution.
type Catalog map[string]api.EventType

// NewCatalog builds a Catalog from the fetched type list.
func NewCatalog(types []api.EventType) Catalog {
	c := make(Catalog, len(types))
	for _, t := range types {
		c[t.ID] = t
	}
	return c
}

// Normalize flattens primary events and their reminders into entries. Every
// primary event yields exactly one KindEvent entry; each nested reminder
// yields one KindReminder entry whose start and end are both the reminder's
// own date. Output order is unspecified; the track allocator sorts on its
// own terms.
func Normalize(events []api.Event, catalog Catalog) []Entry {
	out := make([]Entry, 0, len(events))
	for _, ev := range events {
		parent := fromEvent(ev, catalog)
		out = append(out, parent)
		for _, r := range ev.Reminders {
			out = append(out, fromReminder(ev, catalog, r))
		}
	}
	return out
}

func fromEvent(ev api.Event, catalog Catalog) Entry {
	e := Entry{
		ID:            ev.ID,
		Kind:          KindEvent,
		Title:         ev.Title,
		Description:   ev.Description,
		Start:         timeutil.Date(ev.StartDate.Time),
		End:           timeutil.Date(ev.EndDate.Time),
		TypeID:        ev.TypeID,
		LinkedOrderID: ev.LinkedOrderID,
		CustomFields:  ev.CustomFields,
		OrderNumber:   ev.OrderNumber,
		Supplier:      ev.Supplier,
	}
	if t, ok := catalog[ev.TypeID]; ok {
		e.TypeName = t.Name
		e.Color = t.Color
		e.Category = t.Category
	} else {
		e.TypeName = ev.TypeID
		e.Color = FallbackColor
		e.Category = api.CategoryEvent
	}
	return e
}

func fromReminder(ev api.Event, catalog Catalog, r api.Reminder) Entry {
	day := timeutil.Date(r.ReminderDate.Time)

	// A reminder without its own id still needs an identity that is unique
	// and stable across reloads; the track allocator's determinism depends
	// on it. Parent id plus date is both.
	id := r.ID
	if id == "" {
		id = fmt.Sprintf("%s@%s", ev.ID, day.Format(timeutil.LayoutISO))
	}

	parentTypeName := FallbackTypeName
	if t, ok := catalog[ev.TypeID]; ok {
		parentTypeName = t.Name
	}

	return Entry{
		ID:             id,
		Kind:           KindReminder,
		Title:          r.Title,
		Description:    r.Description,
		Start:          day,
		End:            day,
		TypeID:         ReminderTypeID,
		TypeName:       ReminderTypeName,
		Color:          ReminderColor,
		Category:       api.CategoryEvent,
		ParentID:       ev.ID,
		ParentTypeName: parentTypeName,
	}
}
