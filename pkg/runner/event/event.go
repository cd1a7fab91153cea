package event

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/app"
	"github.com/antoniocanovasleon/iberfoods/pkg/timeutil"
)

// Add creates a calendar event.
type Add struct {
	Service     *app.Service
	Title       string
	Description string
	Start       string
	End         string
	TypeID      string
	OrderID     string
	OrderNumber string
	Client      string
	Supplier    string
	Amount      float64
	Reminders   []string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	in, err := n.input()
	if err != nil {
		return err
	}
	if _, err := n.Service.SaveEvent(ctx, "", in); err != nil {
		return err
	}
	fmt.Printf("evento creado: %s\n", n.Title)
	return nil
}

func (n *Add) input() (api.EventInput, error) {
	var in api.EventInput
	if n.Title == "" {
		return in, errors.New("an event needs a title")
	}
	start, err := timeutil.ParseISO(n.Start)
	if err != nil {
		return in, fmt.Errorf("bad --start date: %w", err)
	}
	end := start
	if n.End != "" {
		if end, err = timeutil.ParseISO(n.End); err != nil {
			return in, fmt.Errorf("bad --end date: %w", err)
		}
	}
	if end.Before(start) {
		return in, errors.New("the event ends before it starts")
	}

	reminders, err := parseReminders(n.Reminders)
	if err != nil {
		return in, err
	}

	in = api.EventInput{
		Title:         n.Title,
		Description:   n.Description,
		StartDate:     api.ISODate{Time: start},
		EndDate:       api.ISODate{Time: end},
		TypeID:        n.TypeID,
		LinkedOrderID: n.OrderID,
		OrderNumber:   n.OrderNumber,
		Client:        n.Client,
		Supplier:      n.Supplier,
		Reminders:     reminders,
	}
	if n.Amount != 0 {
		amount := n.Amount
		in.Amount = &amount
	}
	return in, nil
}

// parseReminders splits "2025-03-09:Confirmar stand" pairs.
func parseReminders(raw []string) ([]api.Reminder, error) {
	out := make([]api.Reminder, 0, len(raw))
	for _, r := range raw {
		date, title, found := strings.Cut(r, ":")
		if !found || title == "" {
			return nil, fmt.Errorf("bad reminder %q, want DATE:TITLE", r)
		}
		when, err := timeutil.ParseISO(date)
		if err != nil {
			return nil, fmt.Errorf("bad reminder date in %q: %w", r, err)
		}
		out = append(out, api.Reminder{
			Title:        strings.TrimSpace(title),
			ReminderDate: api.ISODate{Time: when},
		})
	}
	return out, nil
}

// Edit updates an event. The backend replaces the event wholesale, so the
// current one is fetched first and only the flags that were set override it.
type Edit struct {
	Service     *app.Service
	ID          string
	Title       *string
	Description *string
	Start       *string
	End         *string
	TypeID      *string
	OrderID     *string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if n.ID == "" {
		return errors.New("which event? --id is required")
	}

	events, err := n.Service.Client.Events(ctx)
	if err != nil {
		return err
	}
	var current *api.Event
	for i := range events {
		if events[i].ID == n.ID {
			current = &events[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("no event with id %s", n.ID)
	}

	in := api.EventInput{
		Title:         current.Title,
		Description:   current.Description,
		StartDate:     current.StartDate,
		EndDate:       current.EndDate,
		TypeID:        current.TypeID,
		LinkedOrderID: current.LinkedOrderID,
		CustomFields:  current.CustomFields,
		OrderNumber:   current.OrderNumber,
		Client:        current.Client,
		Supplier:      current.Supplier,
		Amount:        current.Amount,
		Reminders:     current.Reminders,
	}

	if n.Title != nil {
		in.Title = *n.Title
	}
	if n.Description != nil {
		in.Description = *n.Description
	}
	if n.Start != nil {
		start, err := timeutil.ParseISO(*n.Start)
		if err != nil {
			return fmt.Errorf("bad --start date: %w", err)
		}
		in.StartDate = api.ISODate{Time: start}
	}
	if n.End != nil {
		end, err := timeutil.ParseISO(*n.End)
		if err != nil {
			return fmt.Errorf("bad --end date: %w", err)
		}
		in.EndDate = api.ISODate{Time: end}
	}
	if n.TypeID != nil {
		in.TypeID = *n.TypeID
	}
	if n.OrderID != nil {
		in.LinkedOrderID = *n.OrderID
	}
	if in.EndDate.Before(in.StartDate.Time) {
		return errors.New("the event ends before it starts")
	}

	if _, err := n.Service.SaveEvent(ctx, n.ID, in); err != nil {
		return err
	}
	fmt.Printf("evento actualizado: %s\n", in.Title)
	return nil
}

// Remove deletes an event.
type Remove struct {
	Service *app.Service
	ID      string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if n.ID == "" {
		return errors.New("which event? --id is required")
	}
	if _, err := n.Service.RemoveEvent(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("evento eliminado: %s\n", n.ID)
	return nil
}
