package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/antoniocanovasleon/iberfoods/pkg/timeutil"
)

// ISODate is a calendar date transported as YYYY-MM-DD. Decoding rejects
// anything else: a malformed date from the API is an input-contract breach
// that fails the whole fetch rather than producing a half-valid entry.
type ISODate struct {
	time.Time
}

func (d ISODate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(timeutil.LayoutISO))
}

func (d *ISODate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("api: date must be a string: %w", err)
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := timeutil.ParseISO(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Reminder is a single-day sub-record nested under a calendar event.
type Reminder struct {
	ID           string  `json:"id,omitempty"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	ReminderDate ISODate `json:"reminder_date"`
}

// Event is a dated record (plain event or document) from /calendar.
// StartDate and EndDate are inclusive.
type Event struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	StartDate     ISODate        `json:"start_date"`
	EndDate       ISODate        `json:"end_date"`
	TypeID        string         `json:"type_id"`
	LinkedOrderID string         `json:"linked_order_id,omitempty"`
	CustomFields  map[string]any `json:"custom_fields,omitempty"`
	OrderNumber   string         `json:"order_number,omitempty"`
	Client        string         `json:"client,omitempty"`
	Supplier      string         `json:"supplier,omitempty"`
	Amount        *float64       `json:"amount,omitempty"`
	Reminders     []Reminder     `json:"reminders,omitempty"`
}

// EventInput is the payload for creating or updating an event.
type EventInput struct {
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	StartDate     ISODate        `json:"start_date"`
	EndDate       ISODate        `json:"end_date"`
	TypeID        string         `json:"type_id"`
	LinkedOrderID string         `json:"linked_order_id,omitempty"`
	CustomFields  map[string]any `json:"custom_fields,omitempty"`
	OrderNumber   string         `json:"order_number,omitempty"`
	Client        string         `json:"client,omitempty"`
	Supplier      string         `json:"supplier,omitempty"`
	Amount        *float64       `json:"amount,omitempty"`
	Reminders     []Reminder     `json:"reminders,omitempty"`
}

// Category values for event types.
const (
	CategoryEvent    = "event"
	CategoryDocument = "document"
)

// EventType is a taxonomy entry for calendar events. Document-category
// types carry structured order fields on their events.
type EventType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Category string `json:"category"`
}

// TaskType is a taxonomy entry for kanban tasks.
type TaskType struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TypeInput creates or updates an event or task type.
type TypeInput struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Category string `json:"category,omitempty"`
}

// Kanban task statuses and priorities, as the board uses them.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a kanban card.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	Priority    string `json:"priority"`
	TaskTypeID  string `json:"task_type_id,omitempty"`
	Position    int    `json:"position"`
}

// TaskInput is the payload for creating a task.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	Priority    string `json:"priority,omitempty"`
	TaskTypeID  string `json:"task_type_id,omitempty"`
	Position    int    `json:"position,omitempty"`
}

// TaskUpdate carries a partial update; nil fields are left untouched
// server-side.
type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	TaskTypeID  *string `json:"task_type_id,omitempty"`
	Position    *int    `json:"position,omitempty"`
}

// Order statuses.
const (
	OrderActive    = "active"
	OrderCompleted = "completed"
)

// Order is a purchase order derived from a document event.
type Order struct {
	ID              string   `json:"id"`
	CalendarEventID string   `json:"calendar_event_id"`
	OrderNumber     string   `json:"order_number"`
	Supplier        string   `json:"supplier"`
	Client          string   `json:"client"`
	Amount          *float64 `json:"amount,omitempty"`
	Status          string   `json:"status"`
}

// User is an account visible on the admin screen.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserInput creates or updates a user. Password handling stays server-side;
// the client only forwards what the admin typed.
type UserInput struct {
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}

// Validate checks the invariants the layout core depends on.
func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("api: event without id")
	}
	if e.StartDate.IsZero() || e.EndDate.IsZero() {
		return fmt.Errorf("api: event %s missing dates", e.ID)
	}
	if e.EndDate.Before(e.StartDate.Time) {
		return fmt.Errorf("api: event %s ends %s before it starts %s",
			e.ID, e.EndDate.Format(timeutil.LayoutISO), e.StartDate.Format(timeutil.LayoutISO))
	}
	for _, r := range e.Reminders {
		if r.ReminderDate.IsZero() {
			return fmt.Errorf("api: event %s has a reminder without date", e.ID)
		}
	}
	return nil
}
