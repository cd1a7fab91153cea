package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/antoniocanovasleon/iberfoods/pkg/app"
	"github.com/antoniocanovasleon/iberfoods/pkg/printers"
	"github.com/antoniocanovasleon/iberfoods/pkg/tui"
)

// Board shows the kanban board, interactively by default.
type Board struct {
	Service *app.Service
	List    bool
	Offline bool
	ShowID  bool
}

func (n *Board) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not render, no service")
	}

	if !n.List && !n.Offline {
		return tui.Run(n.Service)
	}

	var data app.BoardData
	var err error
	if n.Offline {
		d, when, oerr := n.Service.BoardOffline()
		if oerr != nil {
			return oerr
		}
		data = d
		defer func() {
			f := color.New(color.Faint, color.Italic)
			_, _ = f.Printf("sin conexión, datos del %s\n", when.Format("2006-01-02 15:04"))
		}()
	} else {
		if data, err = n.Service.Board(ctx); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Board(data.Tasks, data.Types, data.Users)
	return nil
}

// Move sends one task to another column.
type Move struct {
	Service  *app.Service
	ID       string
	Status   string
	Position int
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}
	if n.ID == "" {
		return errors.New("which task? --id is required")
	}
	var position *int
	if n.Position >= 0 {
		position = &n.Position
	}
	if _, err := n.Service.MoveTask(ctx, n.ID, n.Status, position); err != nil {
		return err
	}
	fmt.Printf("tarea %s movida a %s\n", n.ID, n.Status)
	return nil
}
