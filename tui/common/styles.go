package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89B4FA")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the line under the title.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			MarginLeft(1)

	// TabActiveStyle styles the active view tab.
	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89B4FA")).
			Padding(0, 1)

	// TabInactiveStyle styles inactive view tabs.
	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D")).
				Padding(0, 1)

	// TitleStyle styles entry titles (repo names, post titles).
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles body text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// MetaStyle styles secondary metadata (language, star counts).
	MetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95"))

	// BadgeStyle highlights the fallback-sourced marker.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF")).
			Bold(true).
			MarginLeft(1)

	// SelectedStyle highlights the currently selected entry.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#89B4FA")).
			Padding(0, 1)

	// UnselectedStyle gives unselected entries a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// LabelStyle styles form field labels in the editor.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// FieldDimStyle styles unfocused form fields.
	FieldDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))
)
