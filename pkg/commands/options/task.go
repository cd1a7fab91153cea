package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions carries the fields of a kanban task create or edit.
type TaskOptions struct {
	Title       string
	Description string
	Status      string
	Priority    string
	AssignedTo  string
	TypeID      string
	Position    int
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Task title.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Task description.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority: low, medium or high.")
	cmd.Flags().StringVarP(&o.AssignedTo, "assign", "a", "",
		"User id the task is assigned to.")
	cmd.Flags().StringVar(&o.TypeID, "type", "",
		"Task type id.")
}

func AddTaskStatusArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Status, "status", "s", "",
		"Column: todo, in_progress or done.")
	cmd.Flags().IntVar(&o.Position, "position", -1,
		"Position inside the column, 0-based.")
}
