package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/taskline"
)

// FilterCmd implements the taskline filter command.
type FilterCmd struct {
	flags *Flags
	app   *taskline.App
}

// NewFilterCmd creates a new filter command.
func NewFilterCmd(flags *Flags, app *taskline.App) *FilterCmd {
	return &FilterCmd{flags: flags, app: app}
}

// Register adds the filter command to the application.
func (cmd *FilterCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "filter",
		Usage:     "Show or set the visibility filter",
		UsageText: "taskline filter [all|active|completed]",
		Description: `Shows the saved visibility filter, or sets it when an argument
is given. The filter persists across restarts and applies to both
the interactive list and "taskline ls".

Examples:
  taskline filter
  taskline filter active`,
		Action: cmd.run,
	})
	return app
}

func (cmd *FilterCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() == 0 {
		_, _ = fmt.Fprintln(c.Root().Writer, cmd.app.Tasks.Filter())
		return nil
	}

	f, err := task.ParseFilter(c.Args().Get(0))
	if err != nil {
		return err
	}
	if err := cmd.app.Tasks.SetFilter(ctx, f); err != nil {
		return fmt.Errorf("set filter: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "showing %s tasks\n", f)
	return nil
}
