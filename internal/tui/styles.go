package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the editor.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	Button   lipgloss.Style
	Popover  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Focused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Button:   lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Popover:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
