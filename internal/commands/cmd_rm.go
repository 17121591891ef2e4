package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/taskline"
)

// RmCmd implements the taskline rm command.
type RmCmd struct {
	flags *Flags
	app   *taskline.App
}

// NewRmCmd creates a new rm command.
func NewRmCmd(flags *Flags, app *taskline.App) *RmCmd {
	return &RmCmd{flags: flags, app: app}
}

// Register adds the rm command to the application.
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"remove"},
		Usage:     "Delete a task",
		UsageText: "taskline rm <id>",
		Description: `Deletes a task permanently.

Examples:
  taskline rm h3k9d2m1`,
		Action: cmd.run,
	})
	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskline rm <id>")
	}
	id := c.Args().Get(0)

	removed, ok := findTask(cmd.app.Tasks.Tasks(), id)
	if !ok {
		_, _ = fmt.Fprintf(c.Root().Writer, "no task %s\n", id)
		return nil
	}

	if err := cmd.app.Tasks.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove task: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "deleted %q\n", removed.Text)
	return nil
}
