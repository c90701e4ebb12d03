package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Section       lipgloss.Style
	Label         lipgloss.Style
	Unit          lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Toast         lipgloss.Style
}

func DefaultTheme() Theme {
	accent := lipgloss.Color("63")

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("230")).
			Background(accent),
		TabInactive: lipgloss.NewStyle().
			Padding(0, 2).
			Faint(true),

		Section: lipgloss.NewStyle().Bold(true).Underline(true),
		Label:   lipgloss.NewStyle(),
		Unit:    lipgloss.NewStyle().Faint(true),
		Button: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		ButtonFocused: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(accent),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
