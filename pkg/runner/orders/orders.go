package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/antoniocanovasleon/iberfoods/pkg/app"
	"github.com/antoniocanovasleon/iberfoods/pkg/printers"
)

// List prints every order. Orders are born server-side when a document
// event with an order number is created, so there is no add here.
type List struct {
	Service *app.Service
	Offline bool
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.Offline {
		data, _, err := n.Service.CalendarOffline()
		if err != nil {
			return err
		}
		pp.Orders(data.Orders)
		return nil
	}

	all, err := n.Service.Client.Orders(ctx)
	if err != nil {
		return err
	}
	pp.Orders(all)
	return nil
}

// Show prints one order with its linked document events.
type Show struct {
	Service *app.Service
	ID      string
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	if n.ID == "" {
		return errors.New("which order? --id is required")
	}

	all, err := n.Service.Client.Orders(ctx)
	if err != nil {
		return err
	}
	for _, o := range all {
		if o.ID != n.ID && o.OrderNumber != n.ID {
			continue
		}
		linked, err := n.Service.Client.LinkedEvents(ctx, o.ID)
		if err != nil {
			return err
		}
		pp := printers.PrettyPrint{}
		fmt.Println("")
		pp.LinkedEvents(o, linked)
		return nil
	}
	return fmt.Errorf("no order %s", n.ID)
}

// Remove deletes an order. Its linked events stay; they just lose the link.
type Remove struct {
	Service *app.Service
	ID      string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if n.ID == "" {
		return errors.New("which order? --id is required")
	}
	if err := n.Service.Client.DeleteOrder(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("pedido eliminado: %s\n", n.ID)
	return nil
}
