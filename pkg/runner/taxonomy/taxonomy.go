// Package taxonomy manages the event-type and task-type catalogs. The two
// are the same shape server-side except that event types carry a category,
// so one set of runners covers both.
package taxonomy

import (
	"context"
	"errors"
	"fmt"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/app"
	"github.com/antoniocanovasleon/iberfoods/pkg/printers"
)

// List prints one of the catalogs.
type List struct {
	Service *app.Service
	Tasks   bool
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.Tasks {
		types, err := n.Service.Client.TaskTypes(ctx)
		if err != nil {
			return err
		}
		pp.TaskTypes(types)
		return nil
	}

	types, err := n.Service.Client.EventTypes(ctx)
	if err != nil {
		return err
	}
	pp.EventTypes(types)
	return nil
}

// Add creates a type in one of the catalogs.
type Add struct {
	Service  *app.Service
	Tasks    bool
	Name     string
	Color    string
	Category string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Name == "" {
		return errors.New("a type needs a name")
	}
	in := api.TypeInput{Name: n.Name, Color: n.Color}

	if n.Tasks {
		if n.Category != "" {
			return errors.New("task types have no category")
		}
		created, err := n.Service.Client.CreateTaskType(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("tipo de tarea creado: %s (%s)\n", created.Name, created.ID)
		return nil
	}

	switch n.Category {
	case "", api.CategoryEvent:
		in.Category = api.CategoryEvent
	case api.CategoryDocument:
		in.Category = api.CategoryDocument
	default:
		return fmt.Errorf("unknown category %q", n.Category)
	}
	created, err := n.Service.Client.CreateEventType(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("tipo de evento creado: %s (%s)\n", created.Name, created.ID)
	return nil
}

// Edit renames or recolors a type.
type Edit struct {
	Service  *app.Service
	Tasks    bool
	ID       string
	Name     string
	Color    string
	Category string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if n.ID == "" {
		return errors.New("which type? --id is required")
	}
	in := api.TypeInput{Name: n.Name, Color: n.Color, Category: n.Category}

	if n.Tasks {
		updated, err := n.Service.Client.UpdateTaskType(ctx, n.ID, in)
		if err != nil {
			return err
		}
		fmt.Printf("tipo de tarea actualizado: %s\n", updated.Name)
		return nil
	}

	updated, err := n.Service.Client.UpdateEventType(ctx, n.ID, in)
	if err != nil {
		return err
	}
	fmt.Printf("tipo de evento actualizado: %s\n", updated.Name)
	return nil
}

// Remove deletes a type. The server refuses while events or tasks still
// reference it; that error is surfaced as-is.
type Remove struct {
	Service *app.Service
	Tasks   bool
	ID      string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if n.ID == "" {
		return errors.New("which type? --id is required")
	}
	if n.Tasks {
		if err := n.Service.Client.DeleteTaskType(ctx, n.ID); err != nil {
			return err
		}
	} else {
		if err := n.Service.Client.DeleteEventType(ctx, n.ID); err != nil {
			return err
		}
	}
	fmt.Printf("tipo eliminado: %s\n", n.ID)
	return nil
}
