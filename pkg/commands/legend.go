package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/antoniocanovasleon/iberfoods/pkg/runner/legend"
)

func addLegend(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "legend",
		Aliases: []string{"key"},
		Short:   "Print what every symbol means.",
		Example: `
iberfoods legend
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := legend.Legend{}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
