package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/antoniocanovasleon/iberfoods/pkg/commands/options"
	"github.com/antoniocanovasleon/iberfoods/pkg/runner/board"
)

func addBoard(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive kanban board.",
		Example: `
iberfoods board
iberfoods board list --show-ids
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := board.Board{
				Service: svc,
				Offline: vo.Offline,
				ShowID:  io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOfflineArg(cmd, vo)

	addBoardList(cmd)
	addBoardMove(cmd)

	topLevel.AddCommand(cmd)
}

func addBoardList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the board without going interactive.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := board.Board{
				Service: svc,
				List:    true,
				Offline: vo.Offline,
				ShowID:  io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOfflineArg(cmd, vo)

	topLevel.AddCommand(cmd)
}

func addBoardMove(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	id := ""

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to another column.",
		Example: `
iberfoods board move --id 42 --status in_progress
iberfoods board move --id 42 --status done --position 0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := board.Move{
				Service:  svc,
				ID:       id,
				Status:   to.Status,
				Position: to.Position,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Task id to move.")
	options.AddTaskStatusArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
