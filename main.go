package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/commands"
	"github.com/colonyops/taskline/internal/core/config"
	"github.com/colonyops/taskline/internal/core/eventbus"
	"github.com/colonyops/taskline/internal/core/styles"
	"github.com/colonyops/taskline/internal/data/db"
	"github.com/colonyops/taskline/internal/data/stores"
	"github.com/colonyops/taskline/internal/taskline"
	"github.com/colonyops/taskline/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		tlApp     = &taskline.App{}
		database  *db.DB
		busCancel context.CancelFunc
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "taskline",
		Usage:     "A persistent task list for the terminal",
		UsageText: "taskline [global options] command [command options]",
		Description: `Taskline keeps a single ordered task list with completion state,
a visibility filter, and a color theme, all persisted locally.

Run 'taskline' with no arguments to open the interactive task list.
Run 'taskline add <text>' to add a task from a script or shell.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASKLINE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("TASKLINE_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TASKLINE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TASKLINE_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Open database connection
			dbOpts := db.OpenOptions{
				MaxOpenConns: cfg.Database.MaxOpenConns,
				MaxIdleConns: cfg.Database.MaxIdleConns,
				BusyTimeout:  cfg.Database.BusyTimeout,
			}
			database, err = db.Open(cfg.DataDir, dbOpts)
			if err != nil {
				if !stores.IsCorruptionError(err) {
					return ctx, fmt.Errorf("open database: %w", err)
				}
				// Move the corrupt file aside and start fresh rather than
				// leaving the CLI unusable.
				log.Warn().Err(err).Msg("database corrupt, backing up and recreating")
				if rerr := stores.RecoverFromCorruption(cfg.DataDir); rerr != nil {
					return ctx, fmt.Errorf("recover database: %w", rerr)
				}
				database, err = db.Open(cfg.DataDir, dbOpts)
				if err != nil {
					return ctx, fmt.Errorf("open database after recovery: %w", err)
				}
			}

			kvStore := stores.NewKVStore(database)
			notifyStore := stores.NewNotifyStore(database)

			// Start the event bus dispatch loop for the process lifetime.
			bus := eventbus.New(64)
			busCtx, cancel := context.WithCancel(context.Background())
			busCancel = cancel
			eventbus.RegisterDebugLogger(bus, log.Logger)
			eventbus.NewNotificationRouter(bus).Register()
			go bus.Start(busCtx)

			svc := taskline.NewTaskService(kvStore, bus, log.Logger)
			svc.Load(ctx)

			// The persisted theme wins over the config default.
			theme := svc.Theme()
			if theme == "" {
				theme = cfg.Theme
			}
			if palette, ok := styles.GetPalette(theme); ok {
				styles.SetTheme(palette)
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*tlApp = *taskline.NewApp(svc, notifyStore, bus, cfg, database)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Stop the event bus dispatch loop
			if busCancel != nil {
				busCancel()
			}

			// Close database connection
			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, tlApp)

	app = commands.NewAddCmd(flags, tlApp).Register(app)
	app = commands.NewLsCmd(flags, tlApp).Register(app)
	app = commands.NewToggleCmd(flags, tlApp).Register(app)
	app = commands.NewEditCmd(flags, tlApp).Register(app)
	app = commands.NewRmCmd(flags, tlApp).Register(app)
	app = commands.NewMvCmd(flags, tlApp).Register(app)
	app = commands.NewClearCmd(flags, tlApp).Register(app)
	app = commands.NewFilterCmd(flags, tlApp).Register(app)
	app = commands.NewThemeCmd(flags, tlApp).Register(app)
	app = commands.NewExportCmd(flags, tlApp).Register(app)
	app = commands.NewImportCmd(flags, tlApp).Register(app)
	app = commands.NewLogCmd(flags, tlApp).Register(app)
	app = tuiCmd.Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'taskline --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
