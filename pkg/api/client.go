// Package api talks to the remote IBERFOODS REST backend. The server owns
// all business logic and validation; this client only moves shapes back and
// forth and guarantees that what reaches the rest of the program is
// well-formed (valid dates, start ≤ end).
package api

import "context"

// Client is the surface the rest of the tool programs against. The HTTP
// implementation lives in this package; tests substitute an in-memory fake.
type Client interface {
	Events(ctx context.Context) ([]Event, error)
	CreateEvent(ctx context.Context, in EventInput) (Event, error)
	UpdateEvent(ctx context.Context, id string, in EventInput) (Event, error)
	DeleteEvent(ctx context.Context, id string) error

	EventTypes(ctx context.Context) ([]EventType, error)
	CreateEventType(ctx context.Context, in TypeInput) (EventType, error)
	UpdateEventType(ctx context.Context, id string, in TypeInput) (EventType, error)
	DeleteEventType(ctx context.Context, id string) error

	TaskTypes(ctx context.Context) ([]TaskType, error)
	CreateTaskType(ctx context.Context, in TypeInput) (TaskType, error)
	UpdateTaskType(ctx context.Context, id string, in TypeInput) (TaskType, error)
	DeleteTaskType(ctx context.Context, id string) error

	Tasks(ctx context.Context) ([]Task, error)
	CreateTask(ctx context.Context, in TaskInput) (Task, error)
	UpdateTask(ctx context.Context, id string, in TaskUpdate) (Task, error)
	DeleteTask(ctx context.Context, id string) error

	Orders(ctx context.Context) ([]Order, error)
	LinkedEvents(ctx context.Context, orderID string) ([]Event, error)
	DeleteOrder(ctx context.Context, id string) error

	Users(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, in UserInput) (User, error)
	UpdateUser(ctx context.Context, id string, in UserInput) (User, error)
	DeleteUser(ctx context.Context, id string) error
}
