package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title        *lipgloss.Style
	Header       *lipgloss.Style
	SortMarker   *lipgloss.Style
	Row          *lipgloss.Style
	CursorRow    *lipgloss.Style
	Selected     *lipgloss.Style
	Disabled     *lipgloss.Style
	PagerLink    *lipgloss.Style
	PagerCurrent *lipgloss.Style
	PagerGap     *lipgloss.Style
	Status       *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
	Prompt       *lipgloss.Style
	Footer       *lipgloss.Style
	Empty        *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	SortMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	CursorRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Selected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Disabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	PagerLink: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PagerCurrent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	PagerGap: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
