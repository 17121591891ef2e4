package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/taskline"
	"github.com/colonyops/taskline/pkg/iojson"
)

// LsCmd implements the taskline ls command.
type LsCmd struct {
	flags *Flags
	app   *taskline.App

	filter string
	json   bool
	all    bool
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, app *taskline.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "taskline ls [--filter <filter>] [--json]",
		Description: `Lists tasks in display order under the saved visibility filter.

Use --filter to override the saved filter for this invocation only.

Examples:
  taskline ls
  taskline ls --filter active
  taskline ls --all --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "filter to apply (all, active, completed)",
				Destination: &cmd.filter,
			},
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "list all tasks regardless of the saved filter",
				Destination: &cmd.all,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output tasks as JSON lines",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	filter := cmd.app.Tasks.Filter()
	switch {
	case cmd.all:
		filter = task.FilterAll
	case cmd.filter != "":
		parsed, err := task.ParseFilter(cmd.filter)
		if err != nil {
			return err
		}
		filter = parsed
	}

	tasks := task.Project(cmd.app.Tasks.Tasks(), filter)

	if cmd.json {
		for _, t := range tasks {
			if err := iojson.WriteLine(c.Root().Writer, t); err != nil {
				return err
			}
		}
		return nil
	}

	if len(tasks) == 0 {
		_, _ = fmt.Fprintf(c.Root().Writer, "no %stasks\n", filterLabel(filter))
		return nil
	}

	for _, t := range tasks {
		checkbox := "[ ]"
		if t.Completed {
			checkbox = "[x]"
		}
		_, _ = fmt.Fprintf(c.Root().Writer, "%s %s %s\n", t.ID, checkbox, t.Text)
	}
	return nil
}

func filterLabel(f task.Filter) string {
	if f == task.FilterAll {
		return ""
	}
	return string(f) + " "
}
