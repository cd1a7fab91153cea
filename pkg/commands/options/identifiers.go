package options

import (
	"github.com/spf13/cobra"
)

// IDOptions controls whether raw server ids are shown next to rows.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, io *IDOptions) {
	cmd.Flags().BoolVar(&io.ShowID, "show-ids", false,
		"Show the server id of each row.")
}
