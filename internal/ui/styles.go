// Package ui holds terminal presentation helpers: styles, status symbols,
// aligned tables, and markdown rendering.
package ui

import "github.com/charmbracelet/lipgloss"

const (
	accentColor = "#A78BFA"
	mutedColor  = "#6C7086"
)

var (
	// Accent highlights titles, paths, and the active context.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))

	// Muted is for secondary info and hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))

	// Bold marks names inside tables.
	Bold = lipgloss.NewStyle().Bold(true)

	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Bold(true)
)
