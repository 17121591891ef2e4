package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/taskline"
)

// ToggleCmd implements the taskline toggle command.
type ToggleCmd struct {
	flags *Flags
	app   *taskline.App
}

// NewToggleCmd creates a new toggle command.
func NewToggleCmd(flags *Flags, app *taskline.App) *ToggleCmd {
	return &ToggleCmd{flags: flags, app: app}
}

// Register adds the toggle command to the application.
func (cmd *ToggleCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "toggle",
		Aliases:   []string{"done"},
		Usage:     "Toggle a task's completion",
		UsageText: "taskline toggle <id>",
		Description: `Flips the completion flag of a task.

Examples:
  taskline toggle h3k9d2m1`,
		Action: cmd.run,
	})
	return app
}

func (cmd *ToggleCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskline toggle <id>")
	}
	id := c.Args().Get(0)

	before, ok := findTask(cmd.app.Tasks.Tasks(), id)
	if !ok {
		_, _ = fmt.Fprintf(c.Root().Writer, "no task %s\n", id)
		return nil
	}

	if err := cmd.app.Tasks.Toggle(ctx, id); err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}

	verb := "completed"
	if before.Completed {
		verb = "reopened"
	}
	_, _ = fmt.Fprintf(c.Root().Writer, "%s %q\n", verb, before.Text)
	return nil
}

// findTask looks up a task by id in a slice.
func findTask(tasks []task.Task, id string) (task.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}
