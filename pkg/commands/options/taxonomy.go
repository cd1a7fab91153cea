package options

import (
	"github.com/spf13/cobra"
)

// TypeOptions carries the fields of an event-type or task-type edit.
type TypeOptions struct {
	Name     string
	Color    string
	Category string
}

func AddTypeArgs(cmd *cobra.Command, o *TypeOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Display name of the type.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		"Hex color, e.g. #22c55e.")
}

func AddCategoryArg(cmd *cobra.Command, o *TypeOptions) {
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Type category: event or document.")
}

// UserOptions carries the fields of a user create or edit.
type UserOptions struct {
	Email string
	Name  string
	Role  string
}

func AddUserArgs(cmd *cobra.Command, o *UserOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"User email.")
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Display name.")
	cmd.Flags().StringVarP(&o.Role, "role", "r", "",
		"Role: admin or user.")
}
