// Package taskline wires the task list domain to its storage, event bus,
// and preference state. Commands and the TUI consume App instead of
// cherry-picking raw dependencies.
package taskline

import (
	"github.com/colonyops/taskline/internal/core/config"
	"github.com/colonyops/taskline/internal/core/eventbus"
	"github.com/colonyops/taskline/internal/core/notify"
	"github.com/colonyops/taskline/internal/data/db"
)

// App is the central entry point for all taskline operations.
type App struct {
	Tasks *TaskService

	Notifications notify.Store
	Bus           *eventbus.EventBus
	Config        *config.Config
	DB            *db.DB
}

// NewApp constructs an App from explicit dependencies.
func NewApp(
	tasks *TaskService,
	notifications notify.Store,
	bus *eventbus.EventBus,
	cfg *config.Config,
	database *db.DB,
) *App {
	return &App{
		Tasks:         tasks,
		Notifications: notifications,
		Bus:           bus,
		Config:        cfg,
		DB:            database,
	}
}
