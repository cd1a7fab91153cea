package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/antoniocanovasleon/iberfoods/pkg/app"
	"github.com/antoniocanovasleon/iberfoods/pkg/entry"
	"github.com/antoniocanovasleon/iberfoods/pkg/layout"
	"github.com/antoniocanovasleon/iberfoods/pkg/printers"
	"github.com/antoniocanovasleon/iberfoods/pkg/timeutil"
)

type Calendar struct {
	Service *app.Service
	Mode    string
	Focus   string
	On      string
	Offline bool
	ShowID  bool
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not render, no service")
	}

	data, taken, err := n.load(ctx)
	if err != nil {
		return err
	}

	entries := entry.Normalize(data.Events, entry.NewCatalog(data.Types))
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	today := timeutil.Date(time.Now())

	if n.On != "" {
		on, err := timeutil.ParseISO(n.On)
		if err != nil {
			return fmt.Errorf("bad --on date: %w", err)
		}
		active := make([]entry.Entry, 0, len(entries))
		for _, e := range entries {
			if !on.Before(e.Start) && !on.After(e.End) {
				active = append(active, e)
			}
		}
		pp.Agenda(on, active)
		n.footer(taken)
		return nil
	}

	focus := today
	if n.Focus != "" {
		if focus, err = timeutil.ParseISO(n.Focus); err != nil {
			return fmt.Errorf("bad --focus date: %w", err)
		}
	}

	mode, ok := layout.ParseMode(n.Mode)
	if !ok {
		return fmt.Errorf("unknown view %q", n.Mode)
	}

	window := layout.Window(focus, mode)
	days := layout.Days(window, today, focus)

	switch mode {
	case layout.ModeWeek:
		pp.Week(days, layout.Week(entries, window))
	default:
		pp.Month(focus, days, layout.Month(entries, window))
	}

	n.footer(taken)
	return nil
}

func (n *Calendar) load(ctx context.Context) (app.CalendarData, time.Time, error) {
	if n.Offline {
		return n.Service.CalendarOffline()
	}
	data, err := n.Service.Calendar(ctx)
	return data, time.Time{}, err
}

func (n *Calendar) footer(taken time.Time) {
	if taken.IsZero() {
		return
	}
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf("sin conexión, datos del %s\n", taken.Format("2006-01-02 15:04"))
}
