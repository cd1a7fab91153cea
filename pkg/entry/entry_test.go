package entry

import (
	"testing"
	"time"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
)

func iso(s string) api.ISODate {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return api.ISODate{Time: t}
}

func catalog() Catalog {
	return NewCatalog([]api.EventType{
		{ID: "t-pedido", Name: "Pedido", Color: "#10b981", Category: api.CategoryDocument},
		{ID: "t-visita", Name: "Visita", Color: "#3b82f6", Category: api.CategoryEvent},
	})
}

func TestNormalizeEventWithoutReminders(t *testing.T) {
	events := []api.Event{{
		ID:        "ev-1",
		Title:     "Feria de alimentación",
		StartDate: iso("2025-03-10"),
		EndDate:   iso("2025-03-12"),
		TypeID:    "t-visita",
	}}

	got := Normalize(events, catalog())
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	e := got[0]
	if e.Kind != KindEvent || e.ID != "ev-1" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.TypeName != "Visita" || e.Color != "#3b82f6" || e.Category != api.CategoryEvent {
		t.Fatalf("type not resolved: %+v", e)
	}
	if e.Days() != 3 {
		t.Fatalf("Days = %d, want 3", e.Days())
	}
}

func TestNormalizeRemindersFanOut(t *testing.T) {
	events := []api.Event{{
		ID:        "ev-2",
		Title:     "Pedido Mercamadrid",
		StartDate: iso("2025-03-01"),
		EndDate:   iso("2025-03-05"),
		TypeID:    "t-pedido",
		Reminders: []api.Reminder{
			{ID: "r-1", Title: "Confirmar transporte", ReminderDate: iso("2025-03-03")},
			{Title: "Llamar al proveedor", ReminderDate: iso("2025-03-04")},
		},
	}}

	got := Normalize(events, catalog())
	if len(got) != 3 {
		t.Fatalf("expected N+1 = 3 entries, got %d", len(got))
	}

	var reminders []Entry
	for _, e := range got {
		if e.IsReminder() {
			reminders = append(reminders, e)
		}
	}
	if len(reminders) != 2 {
		t.Fatalf("expected 2 reminder entries, got %d", len(reminders))
	}

	for _, r := range reminders {
		if !r.Start.Equal(r.End) {
			t.Errorf("reminder %s start != end", r.ID)
		}
		if r.ParentID != "ev-2" {
			t.Errorf("reminder %s lost its parent", r.ID)
		}
		if r.TypeID != ReminderTypeID || r.TypeName != ReminderTypeName || r.Color != ReminderColor {
			t.Errorf("reminder %s did not get the synthetic type: %+v", r.ID, r)
		}
		if r.ParentTypeName != "Pedido" {
			t.Errorf("reminder %s parent type = %q", r.ID, r.ParentTypeName)
		}
	}

	if reminders[0].ID != "r-1" {
		t.Errorf("reminder with own id should keep it, got %q", reminders[0].ID)
	}
	if reminders[1].ID != "ev-2@2025-03-04" {
		t.Errorf("derived reminder id = %q", reminders[1].ID)
	}
}

func TestNormalizeDerivedIDStableAcrossRuns(t *testing.T) {
	events := []api.Event{{
		ID:        "ev-3",
		Title:     "Albarán",
		StartDate: iso("2025-04-01"),
		EndDate:   iso("2025-04-01"),
		TypeID:    "t-pedido",
		Reminders: []api.Reminder{{Title: "Revisar", ReminderDate: iso("2025-04-02")}},
	}}

	first := Normalize(events, catalog())
	second := Normalize(events, catalog())
	if first[1].ID != second[1].ID {
		t.Fatalf("derived reminder id unstable: %q vs %q", first[1].ID, second[1].ID)
	}
}

func TestNormalizeUnknownType(t *testing.T) {
	events := []api.Event{{
		ID:        "ev-4",
		Title:     "Tipo borrado",
		StartDate: iso("2025-03-01"),
		EndDate:   iso("2025-03-01"),
		TypeID:    "t-gone",
		Reminders: []api.Reminder{{Title: "Aviso", ReminderDate: iso("2025-03-01")}},
	}}

	got := Normalize(events, catalog())
	if got[0].Color != FallbackColor {
		t.Errorf("event fallback color = %q", got[0].Color)
	}
	if got[1].ParentTypeName != FallbackTypeName {
		t.Errorf("reminder fallback label = %q, want %q", got[1].ParentTypeName, FallbackTypeName)
	}
}
