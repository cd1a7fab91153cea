package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/antoniocanovasleon/iberfoods/pkg/commands/options"
	"github.com/antoniocanovasleon/iberfoods/pkg/runner/taxonomy"
)

func addTypes(topLevel *cobra.Command) {
	cmd := taxonomyCommand(false, "types", "Manage event types.", `
iberfoods types
iberfoods types add -n Feria --color "#22c55e"
iberfoods types add -n Factura --color "#ef4444" --category document
`)
	topLevel.AddCommand(cmd)
}

func addTaskTypes(topLevel *cobra.Command) {
	cmd := taxonomyCommand(true, "task-types", "Manage task types.", `
iberfoods task-types
iberfoods task-types add -n Compras --color "#3b82f6"
`)
	topLevel.AddCommand(cmd)
}

// taxonomyCommand builds the identical list/add/edit/rm tree for either
// catalog.
func taxonomyCommand(tasks bool, use, short, example string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: example,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := taxonomy.List{Service: svc, Tasks: tasks}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addTypeAdd(cmd, tasks)
	addTypeEdit(cmd, tasks)
	addTypeRemove(cmd, tasks)

	return cmd
}

func addTypeAdd(topLevel *cobra.Command, tasks bool) {
	to := &options.TypeOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a type.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := taxonomy.Add{
				Service:  svc,
				Tasks:    tasks,
				Name:     to.Name,
				Color:    to.Color,
				Category: to.Category,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTypeArgs(cmd, to)
	if !tasks {
		options.AddCategoryArg(cmd, to)
	}

	topLevel.AddCommand(cmd)
}

func addTypeEdit(topLevel *cobra.Command, tasks bool) {
	to := &options.TypeOptions{}
	id := ""

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Rename or recolor a type.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := taxonomy.Edit{
				Service:  svc,
				Tasks:    tasks,
				ID:       id,
				Name:     to.Name,
				Color:    to.Color,
				Category: to.Category,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Type id to edit.")
	options.AddTypeArgs(cmd, to)
	if !tasks {
		options.AddCategoryArg(cmd, to)
	}

	topLevel.AddCommand(cmd)
}

func addTypeRemove(topLevel *cobra.Command, tasks bool) {
	id := ""

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a type that nothing references anymore.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := taxonomy.Remove{Service: svc, Tasks: tasks, ID: id}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Type id to delete.")

	topLevel.AddCommand(cmd)
}
