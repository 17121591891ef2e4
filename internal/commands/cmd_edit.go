package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/taskline"
)

// EditCmd implements the taskline edit command.
type EditCmd struct {
	flags *Flags
	app   *taskline.App
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags, app *taskline.App) *EditCmd {
	return &EditCmd{flags: flags, app: app}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Replace a task's text",
		UsageText: "taskline edit <id> <text>",
		Description: `Replaces the text of a task. The completion flag and position
are unchanged.

Examples:
  taskline edit h3k9d2m1 buy oat milk`,
		Action: cmd.run,
	})
	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: taskline edit <id> <text>")
	}
	id := c.Args().Get(0)
	text := strings.Join(c.Args().Slice()[1:], " ")

	if _, ok := findTask(cmd.app.Tasks.Tasks(), id); !ok {
		_, _ = fmt.Fprintf(c.Root().Writer, "no task %s\n", id)
		return nil
	}

	if err := cmd.app.Tasks.Edit(ctx, id, text); err != nil {
		return fmt.Errorf("edit task: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "updated %s\n", id)
	return nil
}
