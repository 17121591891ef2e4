package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/taskline"
	"github.com/colonyops/taskline/internal/tui"
	"github.com/colonyops/taskline/internal/tui/notify"
)

// TuiCmd implements the interactive task list. It is also the default
// action when taskline runs with no subcommand.
type TuiCmd struct {
	flags *Flags
	app   *taskline.App
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags, app *taskline.App) *TuiCmd {
	return &TuiCmd{flags: flags, app: app}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Open the interactive task list",
		UsageText: "taskline tui",
		Action:    cmd.Run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(_ context.Context, _ *cli.Command) error {
	announcer := notify.NewBus(cmd.app.Notifications)
	announcer.AttachEventBus(cmd.app.Bus)

	if err := tui.Run(cmd.app, announcer); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
