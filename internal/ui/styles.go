// Package ui renders sweep's plan, deletion results, and the interactive
// branch selector.
package ui

import "github.com/charmbracelet/lipgloss"

// Shared color palette.
var (
	accent  lipgloss.TerminalColor = lipgloss.Color("212") // pink
	success lipgloss.TerminalColor = lipgloss.Color("82")  // green
	danger  lipgloss.TerminalColor = lipgloss.Color("196") // red
	muted   lipgloss.TerminalColor = lipgloss.Color("240") // gray
)

// Shared styles.
var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(accent)
	successStyle = lipgloss.NewStyle().Foreground(success)
	dangerStyle  = lipgloss.NewStyle().Foreground(danger)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
)
