package fan

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	fanTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	onStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("203")).Padding(0, 2)
	offStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 2)
	fanInfoStyle  = lipgloss.NewStyle().Faint(true)
	fanErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View renders the fan button. The label names the action a press performs.
func View(m *Model) string {
	b := &strings.Builder{}
	b.WriteString(fanTitleStyle.Render("Fan"))
	b.WriteString("\n")
	if m == nil {
		b.WriteString(fanInfoStyle.Render("No device configured"))
		return b.String()
	}
	if m.On() {
		b.WriteString(onStyle.Render("FAN OFF"))
		b.WriteString("\n")
		b.WriteString(fanInfoStyle.Render("fan running"))
	} else {
		b.WriteString(offStyle.Render("FAN ON"))
	}
	if m.Pending() {
		b.WriteString("\n")
		b.WriteString(fanInfoStyle.Render("sending..."))
	}
	if m.Err() != "" {
		b.WriteString("\n")
		b.WriteString(fanErrStyle.Render(m.Err()))
	}
	return b.String()
}
