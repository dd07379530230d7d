package weather

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/cabinwatch/internal/remote"
)

var (
	weatherTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	weatherTempStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	weatherMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	weatherInfoStyle  = lipgloss.NewStyle().Faint(true)
	weatherErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View renders the weather pane.
func View(m *Model) string {
	b := &strings.Builder{}
	b.WriteString(weatherTitleStyle.Render("Local Weather"))
	b.WriteString("\n")
	if m == nil {
		b.WriteString(weatherInfoStyle.Render("Weather not configured"))
		return b.String()
	}

	switch m.Status() {
	case remote.NotLoaded:
		b.WriteString(weatherInfoStyle.Render("Waiting for location..."))
	case remote.Loading:
		b.WriteString(weatherInfoStyle.Render("Loading..."))
	case remote.Failed:
		b.WriteString(weatherErrStyle.Render("⚠ Weather unavailable"))
		b.WriteString("\n")
		b.WriteString(weatherErrStyle.Render(m.Err()))
	case remote.Loaded:
		s := m.Snapshot()
		fmt.Fprintf(b, "%s  %s\n", weatherTempStyle.Render(s.Temperature()), s.ConditionText)
		fmt.Fprintln(b, weatherMetaStyle.Render("Feels like "+s.FeelsLike()))
		fmt.Fprintln(b, weatherMetaStyle.Render("Humidity   "+s.Humidity()))
		fmt.Fprintln(b, weatherMetaStyle.Render("Wind       "+s.Wind()))
		b.WriteString(weatherInfoStyle.Render("📍 " + s.Place()))
		if s.LocalTime != "" {
			b.WriteString(weatherInfoStyle.Render("  " + s.LocalTime))
		}
	}
	return b.String()
}
