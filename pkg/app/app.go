// Package app wires the API client and the snapshot cache into the
// operations the commands and the TUI share. The remote store is the sole
// source of truth: every mutation re-fetches the affected collections in
// full before anything is recomputed, instead of patching local state.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/store"
)

// Service provides high-level operations over the remote API.
type Service struct {
	Client    api.Client
	Snapshots *store.Snapshots
}

// CalendarData is everything the calendar screens need.
type CalendarData struct {
	Events []api.Event
	Types  []api.EventType
	Orders []api.Order
}

// BoardData is everything the kanban board needs.
type BoardData struct {
	Tasks []api.Task
	Types []api.TaskType
	Users []api.User
}

// Calendar fetches events, the type catalog, and active orders, and writes
// them through to the snapshot cache.
func (s *Service) Calendar(ctx context.Context) (CalendarData, error) {
	var data CalendarData
	if s.Client == nil {
		return data, errors.New("app: no client configured")
	}

	var err error
	if data.Events, err = s.Client.Events(ctx); err != nil {
		return data, err
	}
	if data.Types, err = s.Client.EventTypes(ctx); err != nil {
		return data, err
	}
	if data.Orders, err = s.Client.Orders(ctx); err != nil {
		return data, err
	}

	s.snapshot(store.ResourceEvents, data.Events)
	s.snapshot(store.ResourceEventTypes, data.Types)
	s.snapshot(store.ResourceOrders, data.Orders)
	return data, nil
}

// CalendarOffline loads the last cached calendar data and reports when it
// was taken.
func (s *Service) CalendarOffline() (CalendarData, time.Time, error) {
	var data CalendarData
	if s.Snapshots == nil {
		return data, time.Time{}, errors.New("app: no snapshot cache configured")
	}
	taken, err := s.Snapshots.Get(store.ResourceEvents, &data.Events)
	if err != nil {
		return data, time.Time{}, err
	}
	if _, err := s.Snapshots.Get(store.ResourceEventTypes, &data.Types); err != nil {
		return data, time.Time{}, err
	}
	// Orders are optional offline; an old cache may predate them.
	_, _ = s.Snapshots.Get(store.ResourceOrders, &data.Orders)
	return data, taken, nil
}

// Board fetches tasks, task types, and users, and snapshots them.
func (s *Service) Board(ctx context.Context) (BoardData, error) {
	var data BoardData
	if s.Client == nil {
		return data, errors.New("app: no client configured")
	}

	var err error
	if data.Tasks, err = s.Client.Tasks(ctx); err != nil {
		return data, err
	}
	if data.Types, err = s.Client.TaskTypes(ctx); err != nil {
		return data, err
	}
	if data.Users, err = s.Client.Users(ctx); err != nil {
		return data, err
	}

	s.snapshot(store.ResourceTasks, data.Tasks)
	s.snapshot(store.ResourceTaskTypes, data.Types)
	s.snapshot(store.ResourceUsers, data.Users)
	return data, nil
}

// BoardOffline loads the last cached board data.
func (s *Service) BoardOffline() (BoardData, time.Time, error) {
	var data BoardData
	if s.Snapshots == nil {
		return data, time.Time{}, errors.New("app: no snapshot cache configured")
	}
	taken, err := s.Snapshots.Get(store.ResourceTasks, &data.Tasks)
	if err != nil {
		return data, time.Time{}, err
	}
	if _, err := s.Snapshots.Get(store.ResourceTaskTypes, &data.Types); err != nil {
		return data, time.Time{}, err
	}
	_, _ = s.Snapshots.Get(store.ResourceUsers, &data.Users)
	return data, taken, nil
}

// SaveEvent creates (empty id) or updates an event, then reloads the
// calendar collections.
func (s *Service) SaveEvent(ctx context.Context, id string, in api.EventInput) (CalendarData, error) {
	if s.Client == nil {
		return CalendarData{}, errors.New("app: no client configured")
	}
	var err error
	if id == "" {
		_, err = s.Client.CreateEvent(ctx, in)
	} else {
		_, err = s.Client.UpdateEvent(ctx, id, in)
	}
	if err != nil {
		return CalendarData{}, err
	}
	return s.Calendar(ctx)
}

// RemoveEvent deletes an event and reloads.
func (s *Service) RemoveEvent(ctx context.Context, id string) (CalendarData, error) {
	if s.Client == nil {
		return CalendarData{}, errors.New("app: no client configured")
	}
	if err := s.Client.DeleteEvent(ctx, id); err != nil {
		return CalendarData{}, err
	}
	return s.Calendar(ctx)
}

// SaveTask creates a task and reloads the board.
func (s *Service) SaveTask(ctx context.Context, in api.TaskInput) (BoardData, error) {
	if s.Client == nil {
		return BoardData{}, errors.New("app: no client configured")
	}
	if _, err := s.Client.CreateTask(ctx, in); err != nil {
		return BoardData{}, err
	}
	return s.Board(ctx)
}

// UpdateTask applies a partial update and reloads the board.
func (s *Service) UpdateTask(ctx context.Context, id string, in api.TaskUpdate) (BoardData, error) {
	if s.Client == nil {
		return BoardData{}, errors.New("app: no client configured")
	}
	if _, err := s.Client.UpdateTask(ctx, id, in); err != nil {
		return BoardData{}, err
	}
	return s.Board(ctx)
}

// MoveTask changes a task's column (and optionally its position within it),
// then reloads. This is the board's whole "drag": one PUT, one reload.
func (s *Service) MoveTask(ctx context.Context, id, status string, position *int) (BoardData, error) {
	switch status {
	case api.StatusTodo, api.StatusInProgress, api.StatusDone:
	default:
		return BoardData{}, fmt.Errorf("app: unknown status %q", status)
	}
	return s.UpdateTask(ctx, id, api.TaskUpdate{Status: &status, Position: position})
}

// RemoveTask deletes a task and reloads the board.
func (s *Service) RemoveTask(ctx context.Context, id string) (BoardData, error) {
	if s.Client == nil {
		return BoardData{}, errors.New("app: no client configured")
	}
	if err := s.Client.DeleteTask(ctx, id); err != nil {
		return BoardData{}, err
	}
	return s.Board(ctx)
}

// snapshot best-effort caches a fetched collection; a failed write never
// fails the fetch.
func (s *Service) snapshot(resource string, v any) {
	if s.Snapshots == nil {
		return
	}
	if err := s.Snapshots.Put(resource, v); err != nil {
		fmt.Fprintf(os.Stderr, "app: snapshot %s: %v\n", resource, err)
	}
}
