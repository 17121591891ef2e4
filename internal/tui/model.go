// Package tui implements the interactive task list built on Bubble Tea.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	corenotify "github.com/colonyops/taskline/internal/core/notify"
	"github.com/colonyops/taskline/internal/core/styles"
	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/taskline"
	"github.com/colonyops/taskline/internal/tui/notify"
)

// mode is the current interaction mode of the task list.
type mode int

const (
	modeBrowse mode = iota
	modeInput
	modeMove
	modeConfirm
)

// inputPurpose distinguishes what the text input is collecting.
type inputPurpose int

const (
	inputAdd inputPurpose = iota
	inputEdit
)

// announcementMsg delivers an announcement from the announcer bus into the
// Bubble Tea update loop.
type announcementMsg corenotify.Notification

// Model is the root Bubble Tea model for the task list.
type Model struct {
	app       *taskline.App
	announcer *notify.Bus

	mode    mode
	purpose inputPurpose
	input   textinput.Model
	editID  string
	moveID  string

	// cursorID keys the cursor by task id so the selection survives
	// re-projection when tasks are filtered, added, or removed.
	cursorID string

	status        corenotify.Notification
	announcements chan corenotify.Notification

	keys     keymap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// New creates the root model. The announcer feeds the status line; every
// announcement it publishes is surfaced on the next update.
func New(app *taskline.App, announcer *notify.Bus) Model {
	ti := textinput.New()
	ti.Placeholder = "task text..."
	ti.CharLimit = 500
	ti.Prompt = "> "

	m := Model{
		app:           app,
		announcer:     announcer,
		input:         ti,
		announcements: make(chan corenotify.Notification, 16),
		keys:          newKeymap(),
		help:          help.New(),
	}

	announcer.Subscribe(func(n corenotify.Notification) {
		select {
		case m.announcements <- n:
		default:
		}
	})

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.listenForAnnouncements()
}

func (m Model) listenForAnnouncements() tea.Cmd {
	return func() tea.Msg {
		return announcementMsg(<-m.announcements)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case announcementMsg:
		m.status = corenotify.Notification(msg)
		return m, m.listenForAnnouncements()

	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeMove:
			return m.updateMove(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	proj := m.app.Tasks.Projection()
	cursor := m.cursorIndex(proj)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if cursor > 0 {
			m.cursorID = proj[cursor-1].ID
		}

	case key.Matches(msg, m.keys.Down):
		if cursor >= 0 && cursor < len(proj)-1 {
			m.cursorID = proj[cursor+1].ID
		}

	case key.Matches(msg, m.keys.Top):
		if len(proj) > 0 {
			m.cursorID = proj[0].ID
		}

	case key.Matches(msg, m.keys.Bottom):
		if len(proj) > 0 {
			m.cursorID = proj[len(proj)-1].ID
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = modeInput
		m.purpose = inputAdd
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if cursor < 0 {
			return m, nil
		}
		m.mode = modeInput
		m.purpose = inputEdit
		m.editID = proj[cursor].ID
		m.input.SetValue(proj[cursor].Text)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		if cursor < 0 {
			return m, nil
		}
		if err := m.app.Tasks.Toggle(ctx, proj[cursor].ID); err != nil {
			m.announcer.Errorf("toggle failed: %v", err)
		}

	case key.Matches(msg, m.keys.Delete):
		if cursor < 0 {
			return m, nil
		}
		// Keep the cursor near the deleted slot.
		m.cursorID = neighborID(proj, cursor)
		if err := m.app.Tasks.Remove(ctx, proj[cursor].ID); err != nil {
			m.announcer.Errorf("delete failed: %v", err)
		}

	case key.Matches(msg, m.keys.Move):
		if cursor < 0 {
			return m, nil
		}
		m.mode = modeMove
		m.moveID = proj[cursor].ID
		m.cursorID = m.moveID

	case key.Matches(msg, m.keys.Clear):
		_, completed := m.app.Tasks.Counts()
		if completed == 0 {
			return m, nil
		}
		if m.app.Config.TUI.ConfirmClear {
			m.mode = modeConfirm
			return m, nil
		}
		return m.clearCompleted()

	case key.Matches(msg, m.keys.Filter):
		if _, err := m.app.Tasks.CycleFilter(ctx); err != nil {
			m.announcer.Errorf("filter change failed: %v", err)
		}

	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.Type {
	case tea.KeyEnter:
		text := m.input.Value()
		m.mode = modeBrowse
		m.input.Blur()

		switch m.purpose {
		case inputAdd:
			added, err := m.app.Tasks.Add(ctx, text)
			if err != nil {
				m.announcer.Warnf("task text cannot be empty")
				return m, nil
			}
			m.cursorID = added.ID
		case inputEdit:
			if err := m.app.Tasks.Edit(ctx, m.editID, text); err != nil {
				m.announcer.Warnf("task text cannot be empty")
				return m, nil
			}
		}
		return m, nil

	case tea.KeyEsc, tea.KeyCtrlC:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	proj := m.app.Tasks.Projection()
	cursor := indexOfID(proj, m.moveID)

	switch {
	case key.Matches(msg, m.keys.Down):
		if cursor >= 0 && cursor < len(proj)-1 {
			if err := m.app.Tasks.Move(ctx, m.moveID, proj[cursor+1].ID); err != nil {
				m.announcer.Errorf("move failed: %v", err)
			}
		}

	case key.Matches(msg, m.keys.Up):
		if cursor > 0 {
			if err := m.app.Tasks.Move(ctx, m.moveID, proj[cursor-1].ID); err != nil {
				m.announcer.Errorf("move failed: %v", err)
			}
		}

	case key.Matches(msg, m.keys.Move), key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.moveID = ""

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeBrowse
		return m.clearCompleted()

	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.mode = modeBrowse
	}
	return m, nil
}

func (m Model) clearCompleted() (tea.Model, tea.Cmd) {
	if _, err := m.app.Tasks.ClearCompleted(context.Background()); err != nil {
		m.announcer.Errorf("clear failed: %v", err)
	}
	return m, nil
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	names := styles.ThemeNames()
	current := m.app.Tasks.Theme()
	if current == "" {
		current = styles.DefaultTheme
	}

	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}

	if p, ok := styles.GetPalette(next); ok {
		styles.SetTheme(p)
	}
	if err := m.app.Tasks.SetTheme(context.Background(), next); err != nil {
		m.announcer.Errorf("theme change failed: %v", err)
	}
	return m, nil
}

// cursorIndex resolves cursorID against the projection, clamping to the
// nearest valid slot. Returns -1 for an empty projection.
func (m Model) cursorIndex(proj []task.Task) int {
	if len(proj) == 0 {
		return -1
	}
	if i := indexOfID(proj, m.cursorID); i >= 0 {
		return i
	}
	return 0
}

func indexOfID(tasks []task.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// neighborID picks the id the cursor should land on after the task at i is
// removed: the next task, or the previous when deleting the last one.
func neighborID(proj []task.Task, i int) string {
	if i+1 < len(proj) {
		return proj[i+1].ID
	}
	if i-1 >= 0 {
		return proj[i-1].ID
	}
	return ""
}
