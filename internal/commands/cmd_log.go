package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/taskline"
	"github.com/colonyops/taskline/pkg/iojson"
)

// LogCmd implements the taskline log command.
type LogCmd struct {
	flags *Flags
	app   *taskline.App

	json  bool
	clear bool
	limit int
}

// NewLogCmd creates a new log command.
func NewLogCmd(flags *Flags, app *taskline.App) *LogCmd {
	return &LogCmd{flags: flags, app: app}
}

// Register adds the log command to the application.
func (cmd *LogCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "log",
		Usage:     "Show the announcement history",
		UsageText: "taskline log [--limit <n>] [--json]",
		Description: `Shows announcements recorded by past sessions, newest first.
Every successful mutation produces one announcement.

Examples:
  taskline log
  taskline log --limit 10
  taskline log --clear`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "show at most n announcements (0 = all)",
				Destination: &cmd.limit,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output announcements as JSON lines",
				Destination: &cmd.json,
			},
			&cli.BoolFlag{
				Name:        "clear",
				Usage:       "delete the announcement history",
				Destination: &cmd.clear,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *LogCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.clear {
		if err := cmd.app.Notifications.Clear(ctx); err != nil {
			return fmt.Errorf("clear announcements: %w", err)
		}
		_, _ = fmt.Fprintln(c.Root().Writer, "cleared")
		return nil
	}

	items, err := cmd.app.Notifications.List(ctx)
	if err != nil {
		return fmt.Errorf("list announcements: %w", err)
	}
	if cmd.limit > 0 && len(items) > cmd.limit {
		items = items[:cmd.limit]
	}

	if cmd.json {
		for _, n := range items {
			if err := iojson.WriteLine(c.Root().Writer, n); err != nil {
				return err
			}
		}
		return nil
	}

	for _, n := range items {
		_, _ = fmt.Fprintf(c.Root().Writer, "%s [%s] %s\n",
			n.CreatedAt.Local().Format("2006-01-02 15:04:05"), n.Level, n.Message)
	}
	return nil
}
