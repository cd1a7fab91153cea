package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/app"
	"github.com/antoniocanovasleon/iberfoods/pkg/printers"
)

// List prints the user directory.
type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	all, err := n.Service.Client.Users(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Users(all)
	return nil
}

// Add registers a user.
type Add struct {
	Service *app.Service
	Email   string
	Name    string
	Role    string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Email == "" {
		return errors.New("a user needs an email")
	}
	created, err := n.Service.Client.CreateUser(ctx, api.UserInput{
		Email: n.Email,
		Name:  n.Name,
		Role:  n.Role,
	})
	if err != nil {
		return err
	}
	fmt.Printf("usuario creado: %s (%s)\n", created.Email, created.ID)
	return nil
}

// Edit updates a user's name or role.
type Edit struct {
	Service *app.Service
	ID      string
	Email   string
	Name    string
	Role    string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if n.ID == "" {
		return errors.New("which user? --id is required")
	}
	updated, err := n.Service.Client.UpdateUser(ctx, n.ID, api.UserInput{
		Email: n.Email,
		Name:  n.Name,
		Role:  n.Role,
	})
	if err != nil {
		return err
	}
	fmt.Printf("usuario actualizado: %s\n", updated.Email)
	return nil
}

// Remove deletes a user.
type Remove struct {
	Service *app.Service
	ID      string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if n.ID == "" {
		return errors.New("which user? --id is required")
	}
	if err := n.Service.Client.DeleteUser(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("usuario eliminado: %s\n", n.ID)
	return nil
}
