package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/taskline"
)

// ClearCmd implements the taskline clear command.
type ClearCmd struct {
	flags *Flags
	app   *taskline.App
}

// NewClearCmd creates a new clear command.
func NewClearCmd(flags *Flags, app *taskline.App) *ClearCmd {
	return &ClearCmd{flags: flags, app: app}
}

// Register adds the clear command to the application.
func (cmd *ClearCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "clear",
		Usage:     "Remove all completed tasks",
		UsageText: "taskline clear",
		Description: `Removes every completed task. Active tasks keep their order.

Examples:
  taskline clear`,
		Action: cmd.run,
	})
	return app
}

func (cmd *ClearCmd) run(ctx context.Context, c *cli.Command) error {
	removed, err := cmd.app.Tasks.ClearCompleted(ctx)
	if err != nil {
		return fmt.Errorf("clear completed: %w", err)
	}

	switch removed {
	case 0:
		_, _ = fmt.Fprintln(c.Root().Writer, "nothing to clear")
	case 1:
		_, _ = fmt.Fprintln(c.Root().Writer, "cleared 1 completed task")
	default:
		_, _ = fmt.Fprintf(c.Root().Writer, "cleared %d completed tasks\n", removed)
	}
	return nil
}
