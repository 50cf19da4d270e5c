package tui

import "github.com/charmbracelet/lipgloss"

// Styles is one colour theme. Dark mode is stored with the user's data, so
// the theme is rebuilt whenever it is toggled.
type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Title       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Muted       lipgloss.Style
	Success     lipgloss.Style
	Danger      lipgloss.Style
	Warning     lipgloss.Style
	Box         lipgloss.Style
	Doc         lipgloss.Style

	Clean   lipgloss.Style
	Lapsed  lipgloss.Style
	Neutral lipgloss.Style
	Today   lipgloss.Style
}

func NewStyles(dark bool) Styles {
	accent, fg, muted, surface := lipgloss.Color("29"), lipgloss.Color("235"), lipgloss.Color("244"), lipgloss.Color("254")
	if dark {
		accent, fg, muted, surface = lipgloss.Color("42"), lipgloss.Color("252"), lipgloss.Color("240"), lipgloss.Color("236")
	}
	green, red, amber := lipgloss.Color("34"), lipgloss.Color("160"), lipgloss.Color("172")
	if dark {
		green, red, amber = lipgloss.Color("78"), lipgloss.Color("203"), lipgloss.Color("214")
	}

	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(accent).
			Background(surface).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Title:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(muted).Width(22),
		Value:   lipgloss.NewStyle().Foreground(fg).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Success: lipgloss.NewStyle().Foreground(green),
		Danger:  lipgloss.NewStyle().Foreground(red).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(amber).Italic(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Doc: lipgloss.NewStyle().Padding(1, 2),

		Clean:   lipgloss.NewStyle().Foreground(green).Width(4).Align(lipgloss.Right),
		Lapsed:  lipgloss.NewStyle().Foreground(red).Width(4).Align(lipgloss.Right),
		Neutral: lipgloss.NewStyle().Foreground(muted).Width(4).Align(lipgloss.Right),
		Today:   lipgloss.NewStyle().Underline(true),
	}
}
