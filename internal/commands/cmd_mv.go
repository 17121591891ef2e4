package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/taskline"
)

// MvCmd implements the taskline mv command.
type MvCmd struct {
	flags *Flags
	app   *taskline.App
}

// NewMvCmd creates a new mv command.
func NewMvCmd(flags *Flags, app *taskline.App) *MvCmd {
	return &MvCmd{flags: flags, app: app}
}

// Register adds the mv command to the application.
func (cmd *MvCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "mv",
		Aliases:   []string{"move"},
		Usage:     "Move a task to another task's slot",
		UsageText: "taskline mv <id> <target-id>",
		Description: `Moves a task to the slot occupied by the target task. Moving a
task down the list places it after the target; moving it up places
it before the target.

Examples:
  taskline mv h3k9d2m1 p8w2x5q7`,
		Action: cmd.run,
	})
	return app
}

func (cmd *MvCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: taskline mv <id> <target-id>")
	}
	srcID, dstID := c.Args().Get(0), c.Args().Get(1)

	tasks := cmd.app.Tasks.Tasks()
	src, ok := findTask(tasks, srcID)
	if !ok {
		_, _ = fmt.Fprintf(c.Root().Writer, "no task %s\n", srcID)
		return nil
	}
	if _, ok := findTask(tasks, dstID); !ok {
		_, _ = fmt.Fprintf(c.Root().Writer, "no task %s\n", dstID)
		return nil
	}
	if srcID == dstID {
		return nil
	}

	if err := cmd.app.Tasks.Move(ctx, srcID, dstID); err != nil {
		return fmt.Errorf("move task: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "moved %q\n", src.Text)
	return nil
}
