package cmd

import "github.com/charmbracelet/lipgloss"

// Centralized styles for consistent UX across views.
var (
	appTitle     = "cabinwatch"
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Background(lipgloss.Color("57")).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Padding(0, 1)
	contentStyle = lipgloss.NewStyle().Padding(1, 2)
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cabinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	outsideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	legendStyle  = lipgloss.NewStyle().Faint(true)
)
