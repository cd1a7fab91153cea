package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/antoniocanovasleon/iberfoods/pkg/commands/options"
	"github.com/antoniocanovasleon/iberfoods/pkg/runner/orders"
)

func addOrders(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List purchase orders.",
		Example: `
iberfoods orders
iberfoods orders show --id P-1001
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := orders.List{Service: svc, Offline: vo.Offline}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOfflineArg(cmd, vo)

	addOrdersShow(cmd)
	addOrdersRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addOrdersShow(topLevel *cobra.Command) {
	id := ""

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one order and the documents linked to it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := orders.Show{Service: svc, ID: id}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Order id or order number.")

	topLevel.AddCommand(cmd)
}

func addOrdersRemove(topLevel *cobra.Command) {
	id := ""

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an order, keeping its events.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := orders.Remove{Service: svc, ID: id}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Order id to delete.")

	topLevel.AddCommand(cmd)
}
