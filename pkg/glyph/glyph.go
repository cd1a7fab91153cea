// Package glyph defines the symbols the printers use to badge calendar
// entries, kanban tasks, and orders, plus a few raw ANSI text helpers.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Badge identifies a symbol in the table below.
type Badge int

const (
	Event Badge = iota
	Document
	Reminder
	Linked
	Todo
	InProgress
	Done
	PriorityLow
	PriorityMedium
	PriorityHigh
	OrderActive
	OrderCompleted
)

// DefaultGlyphs is the legend, in display order.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Key: "o", Symbol: "○", Meaning: "evento"},
		{Key: "d", Symbol: "▤", Meaning: "documento (pedido, albarán, factura)"},
		{Key: "r", Symbol: "◷", Meaning: "recordatorio"},
		{Key: "@", Symbol: "§", Meaning: "vinculado a pedido"},
		{Key: "t", Symbol: "●", Meaning: "por hacer"},
		{Key: "p", Symbol: "◐", Meaning: "en progreso"},
		{Key: "x", Symbol: "✔", Meaning: "completado"},
		{Key: "1", Symbol: "▁", Meaning: "prioridad baja"},
		{Key: "2", Symbol: "▄", Meaning: "prioridad media"},
		{Key: "3", Symbol: "█", Meaning: "prioridad alta"},
		{Key: "a", Symbol: "◌", Meaning: "pedido activo"},
		{Key: "c", Symbol: "◉", Meaning: "pedido completado"},
	}
}

func (b Badge) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Badge) String() string {
	return b.Glyph().Symbol
}

// ForStatus maps a kanban status onto its badge.
func ForStatus(status string) Badge {
	switch status {
	case "in_progress":
		return InProgress
	case "done":
		return Done
	default:
		return Todo
	}
}

// ForPriority maps a task priority onto its badge.
func ForPriority(priority string) Badge {
	switch priority {
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// ForCategory maps an event-type category onto its badge. Reminder wins:
// a synthetic reminder entry badges as a reminder no matter what category
// its parent's type carries.
func ForCategory(category string, reminder bool) Badge {
	if reminder {
		return Reminder
	}
	if category == "document" {
		return Document
	}
	return Event
}
