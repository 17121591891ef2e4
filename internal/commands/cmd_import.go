package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/taskline"
	"github.com/colonyops/taskline/pkg/iojson"
)

// ImportCmd implements the taskline import command.
type ImportCmd struct {
	flags *Flags
	app   *taskline.App

	reader iojson.FileReader[task.Snapshot]
}

// NewImportCmd creates a new import command.
func NewImportCmd(flags *Flags, app *taskline.App) *ImportCmd {
	return &ImportCmd{flags: flags, app: app}
}

// Register adds the import command to the application.
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Replace all tasks from JSON",
		UsageText: "taskline import [-f <file>]",
		Description: `Replaces the task collection with one previously written by
"taskline export". Reads from stdin unless -f is given.

Examples:
  taskline import -f tasks.json
  taskline export | taskline import`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	snap, err := cmd.reader.Read()
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	if err := cmd.app.Tasks.Import(ctx, snap); err != nil {
		return fmt.Errorf("import tasks: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "imported %d task(s)\n", len(snap.Tasks))
	return nil
}
