package preview

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#0969DA")
	accentColor  = lipgloss.Color("#2DA44E")
	dimColor     = lipgloss.Color("#6E7681")
	linkColor    = lipgloss.Color("#58A6FF")
	scoreColor   = lipgloss.Color("#F778BA")
	sourceColor  = lipgloss.Color("#FFA657")
	tagColor     = lipgloss.Color("#8250DF")

	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	sourceStyle = lipgloss.NewStyle().
			Foreground(sourceColor).
			Bold(true)

	scoreStyle = lipgloss.NewStyle().
			Foreground(scoreColor).
			Bold(true)

	tagStyle = lipgloss.NewStyle().
			Foreground(tagColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	linkStyle = lipgloss.NewStyle().
			Foreground(linkColor).
			Underline(true)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1).
			Width(88)
)
