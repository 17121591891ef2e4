// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	TitleStyle      lipgloss.Style
	CursorStyle     lipgloss.Style
	TaskStyle       lipgloss.Style
	TaskDoneStyle   lipgloss.Style
	TaskMovingStyle lipgloss.Style
	CheckboxStyle   lipgloss.Style
	FilterStyle     lipgloss.Style
	StatusInfoStyle lipgloss.Style
	StatusWarnStyle lipgloss.Style
	StatusErrStyle  lipgloss.Style
	HelpStyle       lipgloss.Style
	InputStyle      lipgloss.Style
	ConfirmStyle    lipgloss.Style
	CountStyle      lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	CursorStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TaskStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	TaskDoneStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Strikethrough(true)
	TaskMovingStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true)
	CheckboxStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	FilterStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	StatusWarnStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	StatusErrStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	InputStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	ConfirmStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)
	CountStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}
