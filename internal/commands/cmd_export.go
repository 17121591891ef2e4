package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/taskline"
	"github.com/colonyops/taskline/pkg/iojson"
)

// ExportCmd implements the taskline export command.
type ExportCmd struct {
	flags *Flags
	app   *taskline.App
}

// NewExportCmd creates a new export command.
func NewExportCmd(flags *Flags, app *taskline.App) *ExportCmd {
	return &ExportCmd{flags: flags, app: app}
}

// Register adds the export command to the application.
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export all tasks as JSON",
		UsageText: "taskline export",
		Description: `Writes the full task collection to stdout as JSON. The output
round-trips through "taskline import".

Examples:
  taskline export > tasks.json`,
		Action: cmd.run,
	})
	return app
}

func (cmd *ExportCmd) run(_ context.Context, c *cli.Command) error {
	if err := iojson.WriteWith(c.Root().Writer, cmd.app.Tasks.Export()); err != nil {
		return fmt.Errorf("export tasks: %w", err)
	}
	return nil
}
