package remind

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"

	"github.com/antoniocanovasleon/iberfoods/pkg/app"
	"github.com/antoniocanovasleon/iberfoods/pkg/entry"
	"github.com/antoniocanovasleon/iberfoods/pkg/glyph"
	"github.com/antoniocanovasleon/iberfoods/pkg/timeutil"
)

// Remind lists the reminders coming up inside the horizon. With --watch it
// keeps running and re-renders whenever another command refreshes the
// snapshot cache; with --schedule it re-renders on a cron expression.
type Remind struct {
	Service  *app.Service
	Days     int
	Watch    bool
	Schedule string
}

func (n *Remind) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remind, no service")
	}
	if n.Days <= 0 {
		n.Days = 7
	}

	if err := n.render(ctx); err != nil {
		return err
	}
	if !n.Watch && n.Schedule == "" {
		return nil
	}

	if n.Schedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(n.Schedule, func() {
			if err := n.render(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "remind: %v\n", err)
			}
		}); err != nil {
			return fmt.Errorf("bad --schedule %q: %w", n.Schedule, err)
		}
		c.Start()
		defer c.Stop()
	}

	if n.Watch {
		if n.Service.Snapshots == nil {
			return errors.New("can not watch, no snapshot cache")
		}
		ch, err := n.Service.Snapshots.Watch(ctx)
		if err != nil {
			return err
		}
		for range ch {
			if err := n.render(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "remind: %v\n", err)
			}
		}
		return nil
	}

	<-ctx.Done()
	return nil
}

func (n *Remind) render(ctx context.Context) error {
	data, err := n.Service.Calendar(ctx)
	if err != nil {
		return err
	}
	entries := entry.Normalize(data.Events, entry.NewCatalog(data.Types))

	today := timeutil.Date(time.Now())
	horizon := today.AddDate(0, 0, n.Days)

	upcoming := make([]entry.Entry, 0)
	for _, e := range entries {
		if !e.IsReminder() {
			continue
		}
		if e.Start.Before(today) || !e.Start.Before(horizon) {
			continue
		}
		upcoming = append(upcoming, e)
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].Start.Equal(upcoming[j].Start) {
			return upcoming[i].Start.Before(upcoming[j].Start)
		}
		return upcoming[i].ID < upcoming[j].ID
	})

	fmt.Println("")
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Printf("Recordatorios, próximos %d días\n", n.Days)

	if len(upcoming) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" ninguno\n\n")
		return nil
	}

	p := color.New()
	f := color.New(color.Faint)
	for _, e := range upcoming {
		_, _ = p.Printf("%s %s ", glyph.Reminder, e.Title)
		_, _ = f.Printf("(%s, %s", timeutil.RelativeDay(e.Start, today), e.ParentTypeName)
		_, _ = f.Print(")\n")
	}
	fmt.Println("")
	return nil
}
