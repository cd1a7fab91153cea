package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/antoniocanovasleon/iberfoods/pkg/commands/options"
	"github.com/antoniocanovasleon/iberfoods/pkg/runner/users"
)

func addUsers(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the user directory.",
		Example: `
iberfoods users
iberfoods users add -e lucia@iberfoods.es -n Lucía -r admin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := users.List{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addUsersAdd(cmd)
	addUsersEdit(cmd)
	addUsersRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addUsersAdd(topLevel *cobra.Command) {
	uo := &options.UserOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := users.Add{
				Service: svc,
				Email:   uo.Email,
				Name:    uo.Name,
				Role:    uo.Role,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddUserArgs(cmd, uo)

	topLevel.AddCommand(cmd)
}

func addUsersEdit(topLevel *cobra.Command) {
	uo := &options.UserOptions{}
	id := ""

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update a user.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := users.Edit{
				Service: svc,
				ID:      id,
				Email:   uo.Email,
				Name:    uo.Name,
				Role:    uo.Role,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "User id to edit.")
	options.AddUserArgs(cmd, uo)

	topLevel.AddCommand(cmd)
}

func addUsersRemove(topLevel *cobra.Command) {
	id := ""

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a user.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := users.Remove{Service: svc, ID: id}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "User id to delete.")

	topLevel.AddCommand(cmd)
}
