package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/antoniocanovasleon/iberfoods/pkg/commands/options"
	"github.com/antoniocanovasleon/iberfoods/pkg/runner/calendar"
	"github.com/antoniocanovasleon/iberfoods/pkg/runner/export"
)

func addCalendar(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Render the shared calendar.",
		Example: `
iberfoods calendar
iberfoods calendar --week
iberfoods calendar --focus 2025-03-15
iberfoods calendar --on 2025-03-10
iberfoods calendar --offline
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if vo.Month && vo.Week {
				return errors.New("pick one of --month or --week")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			mode := cfg.View
			if vo.Month {
				mode = "month"
			}
			if vo.Week {
				mode = "week"
			}
			s := calendar.Calendar{
				Service: svc,
				Mode:    mode,
				Focus:   vo.Focus,
				On:      vo.On,
				Offline: vo.Offline,
				ShowID:  io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddOfflineArg(cmd, vo)
	options.AddShowIDArgs(cmd, io)

	addCalendarExport(cmd)

	topLevel.AddCommand(cmd)
}

func addCalendarExport(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	out := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the calendar as an iCalendar file.",
		Example: `
iberfoods calendar export --out events.ics
iberfoods calendar export -o - > events.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := export.Export{
				Service: svc,
				Out:     out,
				Offline: vo.Offline,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "events.ics",
		"Output path, or - for stdout.")
	options.AddOfflineArg(cmd, vo)

	topLevel.AddCommand(cmd)
}
