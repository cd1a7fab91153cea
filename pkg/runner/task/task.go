package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/app"
)

// Add creates a kanban task; new tasks always land in the todo column.
type Add struct {
	Service     *app.Service
	Title       string
	Description string
	Priority    string
	AssignedTo  string
	TypeID      string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Title == "" {
		return errors.New("a task needs a title")
	}
	priority := n.Priority
	if priority == "" {
		priority = api.PriorityMedium
	}
	switch priority {
	case api.PriorityLow, api.PriorityMedium, api.PriorityHigh:
	default:
		return fmt.Errorf("unknown priority %q", priority)
	}

	in := api.TaskInput{
		Title:       n.Title,
		Description: n.Description,
		Priority:    priority,
		AssignedTo:  n.AssignedTo,
		TaskTypeID:  n.TypeID,
	}
	if _, err := n.Service.SaveTask(ctx, in); err != nil {
		return err
	}
	fmt.Printf("tarea creada: %s\n", n.Title)
	return nil
}

// Edit applies a partial update; only set fields travel.
type Edit struct {
	Service     *app.Service
	ID          string
	Title       *string
	Description *string
	Priority    *string
	AssignedTo  *string
	TypeID      *string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if n.ID == "" {
		return errors.New("which task? --id is required")
	}
	if n.Priority != nil {
		switch *n.Priority {
		case api.PriorityLow, api.PriorityMedium, api.PriorityHigh:
		default:
			return fmt.Errorf("unknown priority %q", *n.Priority)
		}
	}

	in := api.TaskUpdate{
		Title:       n.Title,
		Description: n.Description,
		Priority:    n.Priority,
		AssignedTo:  n.AssignedTo,
		TaskTypeID:  n.TypeID,
	}
	if _, err := n.Service.UpdateTask(ctx, n.ID, in); err != nil {
		return err
	}
	fmt.Printf("tarea actualizada: %s\n", n.ID)
	return nil
}

// Remove deletes a task.
type Remove struct {
	Service *app.Service
	ID      string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if n.ID == "" {
		return errors.New("which task? --id is required")
	}
	if _, err := n.Service.RemoveTask(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("tarea eliminada: %s\n", n.ID)
	return nil
}
