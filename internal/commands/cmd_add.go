package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/taskline"
)

// AddCmd implements the taskline add command.
type AddCmd struct {
	flags *Flags
	app   *taskline.App
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *taskline.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		UsageText: "taskline add <text>",
		Description: `Adds a task to the end of the list.

Examples:
  taskline add buy milk
  taskline add "call the plumber"`,
		Action: cmd.run,
	})
	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	text := strings.Join(c.Args().Slice(), " ")

	added, err := cmd.app.Tasks.Add(ctx, text)
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "added %q (%s)\n", added.Text, added.ID)
	return nil
}
