package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/antoniocanovasleon/iberfoods/pkg/commands/options"
	"github.com/antoniocanovasleon/iberfoods/pkg/runner/event"
)

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventAdd(cmd)
	addEventEdit(cmd)
	addEventRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addEventAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an event.",
		Example: `
iberfoods event add -t "Feria Alimentaria" --start 2025-03-10 --end 2025-03-12 --type fair
iberfoods event add -t "Factura Mercamadrid" --start 2025-03-05 --type invoice \
  --order-number P-1001 --supplier Mercamadrid --amount 1240.50
iberfoods event add -t "Auditoría" --start 2025-03-20 --remind 2025-03-18:Preparar\ papeles
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := event.Add{
				Service:     svc,
				Title:       eo.Title,
				Description: eo.Description,
				Start:       eo.Start,
				End:         eo.End,
				TypeID:      eo.TypeID,
				OrderID:     eo.OrderID,
				OrderNumber: eo.OrderNumber,
				Client:      eo.Client,
				Supplier:    eo.Supplier,
				Amount:      eo.Amount,
				Reminders:   eo.Reminders,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddDocumentArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

func addEventEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	id := ""

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update an event; only the flags you set change.",
		Example: `
iberfoods event edit --id 7f3a… --end 2025-03-14
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := event.Edit{Service: svc, ID: id}
			if cmd.Flags().Changed("title") {
				s.Title = &eo.Title
			}
			if cmd.Flags().Changed("description") {
				s.Description = &eo.Description
			}
			if cmd.Flags().Changed("start") {
				s.Start = &eo.Start
			}
			if cmd.Flags().Changed("end") {
				s.End = &eo.End
			}
			if cmd.Flags().Changed("type") {
				s.TypeID = &eo.TypeID
			}
			if cmd.Flags().Changed("order") {
				s.OrderID = &eo.OrderID
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Event id to edit.")
	options.AddEventArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

func addEventRemove(topLevel *cobra.Command) {
	id := ""

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an event and its reminders.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := event.Remove{Service: svc, ID: id}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Event id to delete.")

	topLevel.AddCommand(cmd)
}
