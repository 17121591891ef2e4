package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskline/internal/core/notify"
	"github.com/colonyops/taskline/internal/core/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("taskline"))
	b.WriteString("  ")
	b.WriteString(styles.FilterStyle.Render(fmt.Sprintf("[%s]", m.app.Tasks.Filter())))
	b.WriteString("\n\n")

	proj := m.app.Tasks.Projection()
	cursor := m.cursorIndex(proj)

	if len(proj) == 0 {
		b.WriteString(styles.HelpStyle.Render(m.emptyMessage()))
		b.WriteString("\n")
	}

	for i, t := range proj {
		prefix := "  "
		if i == cursor && m.mode != modeMove {
			prefix = styles.CursorStyle.Render("> ")
		}

		checkbox := styles.CheckboxStyle.Render("[ ]")
		if t.Completed {
			checkbox = styles.CheckboxStyle.Render("[x]")
		}

		text := styles.TaskStyle.Render(t.Text)
		switch {
		case m.mode == modeMove && t.ID == m.moveID:
			prefix = styles.CursorStyle.Render("> ")
			text = styles.TaskMovingStyle.Render(t.Text)
		case t.Completed:
			text = styles.TaskDoneStyle.Render(t.Text)
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, checkbox, text))
	}

	b.WriteString("\n")

	active, completed := m.app.Tasks.Counts()
	b.WriteString(styles.CountStyle.Render(fmt.Sprintf("%d active · %d done", active, completed)))
	b.WriteString("\n")

	switch m.mode {
	case modeInput:
		label := "add: "
		if m.purpose == inputEdit {
			label = "edit: "
		}
		b.WriteString(styles.InputStyle.Render(label + m.input.View()))
		b.WriteString("\n")
	case modeMove:
		b.WriteString(styles.ConfirmStyle.Render("moving · j/k to reposition · enter to drop"))
		b.WriteString("\n")
	case modeConfirm:
		b.WriteString(styles.ConfirmStyle.Render(fmt.Sprintf("clear %d completed task(s)? (y/n)", completed)))
		b.WriteString("\n")
	default:
		if m.status.Message != "" {
			b.WriteString(statusStyle(m.status.Level).Render(m.status.Message))
			b.WriteString("\n")
		}
	}

	b.WriteString(styles.HelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) emptyMessage() string {
	switch m.app.Tasks.Filter() {
	case "active":
		return "no active tasks"
	case "completed":
		return "no completed tasks"
	default:
		return "no tasks yet · press a to add one"
	}
}

func statusStyle(level notify.Level) lipgloss.Style {
	switch level {
	case notify.LevelError:
		return styles.StatusErrStyle
	case notify.LevelWarning:
		return styles.StatusWarnStyle
	default:
		return styles.StatusInfoStyle
	}
}
