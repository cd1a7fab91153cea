package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/antoniocanovasleon/iberfoods/pkg/app"
	"github.com/antoniocanovasleon/iberfoods/pkg/entry"
	"github.com/antoniocanovasleon/iberfoods/pkg/ics"
)

type Export struct {
	Service *app.Service
	Out     string
	Offline bool
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}

	var data app.CalendarData
	var err error
	if n.Offline {
		data, _, err = n.Service.CalendarOffline()
	} else {
		data, err = n.Service.Calendar(ctx)
	}
	if err != nil {
		return err
	}

	entries := entry.Normalize(data.Events, entry.NewCatalog(data.Types))

	if n.Out == "" || n.Out == "-" {
		return ics.Export(os.Stdout, entries)
	}

	f, err := os.Create(n.Out)
	if err != nil {
		return fmt.Errorf("create %s: %w", n.Out, err)
	}
	if err := ics.Export(f, entries); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("%d entradas exportadas a %s\n", len(entries), n.Out)
	return nil
}
