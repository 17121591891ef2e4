package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskline/internal/core/config"
	"github.com/colonyops/taskline/internal/core/eventbus"
	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/data/db"
	"github.com/colonyops/taskline/internal/data/stores"
	"github.com/colonyops/taskline/internal/taskline"
	"github.com/colonyops/taskline/internal/tui/notify"
)

func newTestModel(t *testing.T) (Model, *taskline.App) {
	t.Helper()

	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	bus := eventbus.New(64)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go bus.Start(ctx)

	svc := taskline.NewTaskService(stores.NewKVStore(database), bus, zerolog.Nop())
	svc.Load(ctx)

	cfg := config.DefaultConfig()
	app := taskline.NewApp(svc, stores.NewNotifyStore(database), bus, &cfg, database)

	return New(app, notify.NewBus(nil)), app
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func addTask(t *testing.T, m Model, text string) Model {
	t.Helper()
	return press(t, m, runes("a"), runes(text), enter)
}

func projIDs(app *taskline.App) []string {
	proj := app.Tasks.Projection()
	out := make([]string, len(proj))
	for i, task := range proj {
		out[i] = task.ID
	}
	return out
}

func TestModel_AddTask(t *testing.T) {
	t.Run("adds through the input and selects the new task", func(t *testing.T) {
		m, app := newTestModel(t)

		m = addTask(t, m, "buy milk")

		tasks := app.Tasks.Tasks()
		require.Len(t, tasks, 1)
		assert.Equal(t, "buy milk", tasks[0].Text)
		assert.Equal(t, modeBrowse, m.mode)
		assert.Equal(t, tasks[0].ID, m.cursorID)
	})

	t.Run("empty input adds nothing", func(t *testing.T) {
		m, app := newTestModel(t)

		m = press(t, m, runes("a"), enter)

		assert.Empty(t, app.Tasks.Tasks())
		assert.Equal(t, modeBrowse, m.mode)
	})

	t.Run("esc cancels the input", func(t *testing.T) {
		m, app := newTestModel(t)

		m = press(t, m, runes("a"), runes("half typed"), esc)

		assert.Empty(t, app.Tasks.Tasks())
		assert.Equal(t, modeBrowse, m.mode)
	})
}

func TestModel_EditTask(t *testing.T) {
	t.Run("prefills and saves the edit", func(t *testing.T) {
		m, app := newTestModel(t)
		m = addTask(t, m, "buy milk")

		m = press(t, m, runes("e"))
		require.Equal(t, modeInput, m.mode)
		assert.Equal(t, "buy milk", m.input.Value())

		m = press(t, m, runes(" now"), enter)
		assert.Equal(t, "buy milk now", app.Tasks.Tasks()[0].Text)
	})

	t.Run("edit with no tasks is a no-op", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = press(t, m, runes("e"))
		assert.Equal(t, modeBrowse, m.mode)
	})
}

func TestModel_ToggleAndDelete(t *testing.T) {
	t.Run("space toggles the task under the cursor", func(t *testing.T) {
		m, app := newTestModel(t)
		m = addTask(t, m, "a")

		m = press(t, m, runes("x"))
		assert.True(t, app.Tasks.Tasks()[0].Completed)

		m = press(t, m, runes("x"))
		assert.False(t, app.Tasks.Tasks()[0].Completed)
	})

	t.Run("delete moves the cursor to a neighbor", func(t *testing.T) {
		m, app := newTestModel(t)
		m = addTask(t, m, "a")
		m = addTask(t, m, "b")
		m = addTask(t, m, "c")

		// Cursor is on "c" after the last add; jump to the top and delete.
		m = press(t, m, runes("g"), runes("d"))

		ids := projIDs(app)
		require.Len(t, ids, 2)
		assert.Equal(t, "b", app.Tasks.Tasks()[0].Text)
		assert.Equal(t, ids[0], m.cursorID)
	})

	t.Run("delete with no tasks is a no-op", func(t *testing.T) {
		m, _ := newTestModel(t)
		_ = press(t, m, runes("d"))
	})
}

func TestModel_Navigation(t *testing.T) {
	m, app := newTestModel(t)
	m = addTask(t, m, "a")
	m = addTask(t, m, "b")
	m = addTask(t, m, "c")
	ids := projIDs(app)

	m = press(t, m, runes("g"))
	assert.Equal(t, ids[0], m.cursorID)

	m = press(t, m, runes("j"))
	assert.Equal(t, ids[1], m.cursorID)

	m = press(t, m, runes("k"))
	assert.Equal(t, ids[0], m.cursorID)

	// Up at the top stays put.
	m = press(t, m, runes("k"))
	assert.Equal(t, ids[0], m.cursorID)

	m = press(t, m, runes("G"))
	assert.Equal(t, ids[2], m.cursorID)

	// Down at the bottom stays put.
	m = press(t, m, runes("j"))
	assert.Equal(t, ids[2], m.cursorID)
}

func TestModel_MoveMode(t *testing.T) {
	t.Run("j moves the task down one slot", func(t *testing.T) {
		m, app := newTestModel(t)
		m = addTask(t, m, "a")
		m = addTask(t, m, "b")
		m = addTask(t, m, "c")
		before := projIDs(app)

		m = press(t, m, runes("g"), runes("m"))
		require.Equal(t, modeMove, m.mode)

		m = press(t, m, runes("j"))
		assert.Equal(t, []string{before[1], before[0], before[2]}, projIDs(app))

		m = press(t, m, enter)
		assert.Equal(t, modeBrowse, m.mode)
	})

	t.Run("k moves the task up one slot", func(t *testing.T) {
		m, app := newTestModel(t)
		m = addTask(t, m, "a")
		m = addTask(t, m, "b")
		before := projIDs(app)

		m = press(t, m, runes("G"), runes("m"), runes("k"), enter)

		assert.Equal(t, []string{before[1], before[0]}, projIDs(app))
	})

	t.Run("moves at the edges are no-ops", func(t *testing.T) {
		m, app := newTestModel(t)
		m = addTask(t, m, "a")
		m = addTask(t, m, "b")
		before := projIDs(app)

		m = press(t, m, runes("g"), runes("m"), runes("k"))
		assert.Equal(t, before, projIDs(app))

		m = press(t, m, esc, runes("G"), runes("m"), runes("j"))
		assert.Equal(t, before, projIDs(app))
	})
}

func TestModel_FilterCycle(t *testing.T) {
	m, app := newTestModel(t)
	m = addTask(t, m, "a")
	m = press(t, m, runes("x")) // complete "a"
	m = addTask(t, m, "b")

	require.Equal(t, task.FilterAll, app.Tasks.Filter())
	assert.Len(t, app.Tasks.Projection(), 2)

	m = press(t, m, runes("f"))
	assert.Equal(t, task.FilterActive, app.Tasks.Filter())
	require.Len(t, app.Tasks.Projection(), 1)
	assert.Equal(t, "b", app.Tasks.Projection()[0].Text)

	m = press(t, m, runes("f"))
	assert.Equal(t, task.FilterCompleted, app.Tasks.Filter())
	require.Len(t, app.Tasks.Projection(), 1)
	assert.Equal(t, "a", app.Tasks.Projection()[0].Text)

	_ = press(t, m, runes("f"))
	assert.Equal(t, task.FilterAll, app.Tasks.Filter())
}

func TestModel_ClearCompleted(t *testing.T) {
	t.Run("asks for confirmation when configured", func(t *testing.T) {
		m, app := newTestModel(t)
		app.Config.TUI.ConfirmClear = true
		m = addTask(t, m, "a")
		m = press(t, m, runes("x"))

		m = press(t, m, runes("c"))
		require.Equal(t, modeConfirm, m.mode)

		m = press(t, m, runes("y"))
		assert.Equal(t, modeBrowse, m.mode)
		assert.Empty(t, app.Tasks.Tasks())
	})

	t.Run("n cancels the clear", func(t *testing.T) {
		m, app := newTestModel(t)
		app.Config.TUI.ConfirmClear = true
		m = addTask(t, m, "a")
		m = press(t, m, runes("x"), runes("c"), runes("n"))

		assert.Equal(t, modeBrowse, m.mode)
		assert.Len(t, app.Tasks.Tasks(), 1)
	})

	t.Run("clears directly when confirmation is off", func(t *testing.T) {
		m, app := newTestModel(t)
		app.Config.TUI.ConfirmClear = false
		m = addTask(t, m, "a")
		m = press(t, m, runes("x"), runes("c"))

		assert.Empty(t, app.Tasks.Tasks())
	})

	t.Run("nothing completed skips the prompt", func(t *testing.T) {
		m, app := newTestModel(t)
		app.Config.TUI.ConfirmClear = true
		m = addTask(t, m, "a")
		m = press(t, m, runes("c"))

		assert.Equal(t, modeBrowse, m.mode)
		assert.Len(t, app.Tasks.Tasks(), 1)
	})
}

func TestModel_ThemeCycle(t *testing.T) {
	m, app := newTestModel(t)

	m = press(t, m, runes("t"))
	first := app.Tasks.Theme()
	assert.NotEmpty(t, first)

	_ = press(t, m, runes("t"))
	assert.NotEqual(t, first, app.Tasks.Theme())
}

func TestModel_View(t *testing.T) {
	t.Run("renders tasks with checkboxes", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = addTask(t, m, "buy milk")
		m = press(t, m, runes("x"))
		m = addTask(t, m, "walk dog")

		out := m.View()
		assert.Contains(t, out, "buy milk")
		assert.Contains(t, out, "walk dog")
		assert.Contains(t, out, "[x]")
		assert.Contains(t, out, "[ ]")
		assert.Contains(t, out, "1 active")
		assert.Contains(t, out, "1 done")
	})

	t.Run("renders an empty state", func(t *testing.T) {
		m, _ := newTestModel(t)
		assert.Contains(t, m.View(), "no tasks yet")
	})

	t.Run("renders the confirm prompt", func(t *testing.T) {
		m, app := newTestModel(t)
		app.Config.TUI.ConfirmClear = true
		m = addTask(t, m, "a")
		m = press(t, m, runes("x"), runes("c"))

		assert.Contains(t, m.View(), "clear 1 completed task")
	})
}
