package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/taskline/internal/core/eventbus"
	"github.com/colonyops/taskline/internal/taskline"
	"github.com/colonyops/taskline/internal/tui/notify"
)

// Run starts the interactive task list and blocks until it exits.
func Run(app *taskline.App, announcer *notify.Bus) error {
	app.Bus.PublishTUIStarted(eventbus.TUIStartedPayload{})
	defer app.Bus.PublishTUIStopped(eventbus.TUIStoppedPayload{})

	p := tea.NewProgram(New(app, announcer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
