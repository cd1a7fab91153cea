package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/antoniocanovasleon/iberfoods/pkg/commands/options"
	"github.com/antoniocanovasleon/iberfoods/pkg/runner/task"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage kanban tasks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskEdit(cmd)
	addTaskRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task in the todo column.",
		Example: `
iberfoods task add -t "Llamar a Mercamadrid" -p high -a u-antonio
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := task.Add{
				Service:     svc,
				Title:       to.Title,
				Description: to.Description,
				Priority:    to.Priority,
				AssignedTo:  to.AssignedTo,
				TypeID:      to.TypeID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}

func addTaskEdit(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	id := ""

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update a task; only the flags you set change.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := task.Edit{Service: svc, ID: id}
			if cmd.Flags().Changed("title") {
				s.Title = &to.Title
			}
			if cmd.Flags().Changed("description") {
				s.Description = &to.Description
			}
			if cmd.Flags().Changed("priority") {
				s.Priority = &to.Priority
			}
			if cmd.Flags().Changed("assign") {
				s.AssignedTo = &to.AssignedTo
			}
			if cmd.Flags().Changed("type") {
				s.TypeID = &to.TypeID
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Task id to edit.")
	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}

func addTaskRemove(topLevel *cobra.Command) {
	id := ""

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := task.Remove{Service: svc, ID: id}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Task id to delete.")

	topLevel.AddCommand(cmd)
}
