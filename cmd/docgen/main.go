// Command docgen generates CLI reference documentation from the taskline
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/commands"
	"github.com/colonyops/taskline/internal/taskline"
)

func main() {
	flags := &commands.Flags{}
	app := &taskline.App{}

	root := &cli.Command{
		Name:      "taskline",
		Usage:     "A persistent task list for the terminal",
		UsageText: "taskline [global options] command [command options]",
		Description: `Taskline keeps a single ordered task list with completion state,
a visibility filter, and a color theme, all persisted locally.

Run 'taskline' with no arguments to open the interactive task list.
Run 'taskline add <text>' to add a task from a script or shell.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("TASKLINE_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path to log file",
				Sources: cli.EnvVars("TASKLINE_LOG_FILE"),
				Value:   commands.DefaultLogFile(),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("TASKLINE_CONFIG"),
				Value:   commands.DefaultConfigPath(),
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "path to data directory",
				Sources: cli.EnvVars("TASKLINE_DATA_DIR"),
				Value:   commands.DefaultDataDir(),
			},
		},
	}

	root = commands.NewAddCmd(flags, app).Register(root)
	root = commands.NewLsCmd(flags, app).Register(root)
	root = commands.NewToggleCmd(flags, app).Register(root)
	root = commands.NewEditCmd(flags, app).Register(root)
	root = commands.NewMvCmd(flags, app).Register(root)
	root = commands.NewRmCmd(flags, app).Register(root)
	root = commands.NewClearCmd(flags, app).Register(root)
	root = commands.NewFilterCmd(flags, app).Register(root)
	root = commands.NewThemeCmd(flags, app).Register(root)
	root = commands.NewExportCmd(flags, app).Register(root)
	root = commands.NewImportCmd(flags, app).Register(root)
	root = commands.NewLogCmd(flags, app).Register(root)
	root = commands.NewTuiCmd(flags, app).Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
