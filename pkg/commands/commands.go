package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/app"
	"github.com/antoniocanovasleon/iberfoods/pkg/commands/options"
	"github.com/antoniocanovasleon/iberfoods/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "iberfoods",
		Short: base.Wrap80("The IBERFOODS business calendar and kanban board on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addCalendar(topLevel)
	addEvent(topLevel)
	addBoard(topLevel)
	addTask(topLevel)
	addTypes(topLevel)
	addTaskTypes(topLevel)
	addOrders(topLevel)
	addUsers(topLevel)
	addRemind(topLevel)
	addLegend(topLevel)
	addVersion(topLevel)
}

// newService builds the API client and snapshot cache from configuration.
// With no api_url configured the service still works for --offline reads.
func newService() (*app.Service, *store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	svc := &app.Service{Snapshots: store.NewSnapshots(cfg.CachePath)}
	if cfg.APIURL != "" {
		svc.Client = api.NewHTTP(cfg.APIURL, cfg.Token)
	}
	return svc, cfg, nil
}
