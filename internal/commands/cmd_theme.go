package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/core/styles"
	"github.com/colonyops/taskline/internal/taskline"
)

// ThemeCmd implements the taskline theme command.
type ThemeCmd struct {
	flags *Flags
	app   *taskline.App

	list bool
}

// NewThemeCmd creates a new theme command.
func NewThemeCmd(flags *Flags, app *taskline.App) *ThemeCmd {
	return &ThemeCmd{flags: flags, app: app}
}

// Register adds the theme command to the application.
func (cmd *ThemeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "theme",
		Usage:     "Show or set the color theme",
		UsageText: "taskline theme [name]",
		Description: `Sets the persisted color theme. With no argument an interactive
picker opens. The theme persists across restarts.

Examples:
  taskline theme
  taskline theme gruvbox
  taskline theme --list`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "list",
				Aliases:     []string{"l"},
				Usage:       "list available themes",
				Destination: &cmd.list,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ThemeCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.list {
		current := cmd.currentTheme()
		for _, name := range styles.ThemeNames() {
			marker := " "
			if name == current {
				marker = "*"
			}
			_, _ = fmt.Fprintf(c.Root().Writer, "%s %s\n", marker, name)
		}
		return nil
	}

	name := c.Args().Get(0)
	if name == "" {
		picked, err := cmd.pickTheme()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("pick theme: %w", err)
		}
		name = picked
	}

	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q: run 'taskline theme --list'", name)
	}

	if err := cmd.app.Tasks.SetTheme(ctx, name); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "theme set to %s\n", name)
	return nil
}

func (cmd *ThemeCmd) pickTheme() (string, error) {
	choice := cmd.currentTheme()

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(huh.NewOptions(styles.ThemeNames()...)...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func (cmd *ThemeCmd) currentTheme() string {
	if t := cmd.app.Tasks.Theme(); t != "" {
		return t
	}
	return cmd.app.Config.Theme
}
