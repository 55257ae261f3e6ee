package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-configured lipgloss styles for the converter view.
type Styles struct {
	// Title style for the header line.
	Title lipgloss.Style

	// Label style for field captions.
	Label lipgloss.Style

	// Selected style for the focused base selector.
	Selected lipgloss.Style

	// Result style for the converted value.
	Result lipgloss.Style

	// Placeholder style for the empty/error state.
	Placeholder lipgloss.Style

	// Help style for the key hints.
	Help lipgloss.Style

	// Box wraps the whole view.
	Box lipgloss.Style
}

// DefaultStyles returns the default converter styling.
func DefaultStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Result:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")),
		Box:         lipgloss.NewStyle().Padding(1, 2),
	}
}
