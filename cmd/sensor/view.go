package sensor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/cabinwatch/internal/remote"
)

var (
	sensorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	tempStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	humidityStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	sensorInfoStyle  = lipgloss.NewStyle().Faint(true)
	sensorErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View renders the cabin sensor pane.
func View(m *Model) string {
	b := &strings.Builder{}
	b.WriteString(sensorTitleStyle.Render("Cabin"))
	b.WriteString("\n")
	if m == nil {
		b.WriteString(sensorInfoStyle.Render("No device configured"))
		return b.String()
	}

	switch m.Status() {
	case remote.NotLoaded, remote.Loading:
		if last := m.Last(); last != nil {
			fmt.Fprintln(b, labelStyle.Render("Temperature ")+sensorInfoStyle.Render(Celsius(last.TemperatureC)))
			fmt.Fprintln(b, labelStyle.Render("Humidity    ")+sensorInfoStyle.Render(Percent(last.HumidityPct)))
			b.WriteString(sensorInfoStyle.Render("refreshing..."))
			break
		}
		fmt.Fprintln(b, labelStyle.Render("Temperature ")+sensorInfoStyle.Render("Loading..."))
		b.WriteString(labelStyle.Render("Humidity    ") + sensorInfoStyle.Render("Loading..."))
	case remote.Loaded:
		r := m.Reading()
		fmt.Fprintln(b, labelStyle.Render("Temperature ")+tempStyle.Render(Celsius(r.TemperatureC)))
		b.WriteString(labelStyle.Render("Humidity    ") + humidityStyle.Render(Percent(r.HumidityPct)))
	case remote.Failed:
		b.WriteString(sensorErrStyle.Render(m.Err()))
		if last := m.Last(); last != nil {
			b.WriteString("\n")
			b.WriteString(sensorInfoStyle.Render(fmt.Sprintf("last reading %s / %s", Celsius(last.TemperatureC), Percent(last.HumidityPct))))
		}
	}
	return b.String()
}
