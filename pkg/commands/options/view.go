package options

import (
	"github.com/spf13/cobra"
)

// ViewOptions selects what slice of the calendar to render.
type ViewOptions struct {
	Month   bool
	Week    bool
	On      string
	Focus   string
	Offline bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVarP(&o.Month, "month", "m", false,
		"Render the month grid.")
	cmd.Flags().BoolVarP(&o.Week, "week", "w", false,
		"Render a single week.")
	cmd.Flags().StringVar(&o.On, "on", "",
		"List the entries of one day (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.Focus, "focus", "",
		"Focus date for the view (YYYY-MM-DD, default today).")
}

func AddOfflineArg(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVar(&o.Offline, "offline", false,
		"Render from the last snapshot instead of the API.")
}
