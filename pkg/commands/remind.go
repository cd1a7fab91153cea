package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/antoniocanovasleon/iberfoods/pkg/runner/remind"
	"github.com/antoniocanovasleon/iberfoods/pkg/timeutil"
)

func addRemind(topLevel *cobra.Command) {
	window := ""
	watch := false
	schedule := ""

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "List upcoming reminders.",
		Example: `
iberfoods remind
iberfoods remind --window 2w
iberfoods remind --watch
iberfoods remind --schedule "0 8 * * *"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _, err := timeutil.ParseHorizon(window)
			if err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}

			ctx := context.Background()
			if watch || schedule != "" {
				var stop context.CancelFunc
				ctx, stop = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
				defer stop()
			}

			s := remind.Remind{
				Service:  svc,
				Days:     days,
				Watch:    watch,
				Schedule: schedule,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&window, "window", timeutil.DefaultHorizon,
		"How far ahead to look, e.g. 10d or 2w.")
	cmd.Flags().BoolVar(&watch, "watch", false,
		"Keep running and re-render when the local snapshot changes.")
	cmd.Flags().StringVar(&schedule, "schedule", "",
		"Cron expression to re-render on, e.g. '0 8 * * *'.")

	topLevel.AddCommand(cmd)
}
