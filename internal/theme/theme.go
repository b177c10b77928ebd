package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title             *lipgloss.Style
	Item              *lipgloss.Style
	ItemIndex         *lipgloss.Style
	ItemControls      *lipgloss.Style
	SelectedItem      *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	Inserted          *lipgloss.Style
	Updated           *lipgloss.Style
	Removed           *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	InputPrompt       *lipgloss.Style
	InputText         *lipgloss.Style
	Placeholder       *lipgloss.Style
	Cursor            *lipgloss.Style
	Button            *lipgloss.Style
	ActiveButton      *lipgloss.Style
	DangerButton      *lipgloss.Style
	DialogFrame       *lipgloss.Style
	AlertFrame        *lipgloss.Style
	DialogTitle       *lipgloss.Style
	DialogBody        *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndex: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	ItemControls: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Background(lipgloss.Color("238")),
	),
	Inserted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("36")),
	),
	Updated: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")),
	),
	Removed: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Strikethrough(true).Faint(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	InputPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Bold(true),
	),
	InputText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("36")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("237")).Padding(0, 1),
	),
	ActiveButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("30")).Bold(true).Padding(0, 1),
	),
	DangerButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Bold(true).Padding(0, 1),
	),
	DialogFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("36")).Padding(1, 2),
	),
	AlertFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("214")).Padding(1, 2),
	),
	DialogTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	DialogBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Render applies style to text, tolerating a nil style.
func Render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
