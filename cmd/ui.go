package cmd

import (
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/cabinwatch/cmd/fan"
	"github.com/sumwatshade/cabinwatch/cmd/sensor"
	"github.com/sumwatshade/cabinwatch/cmd/weather"
	"github.com/sumwatshade/cabinwatch/internal/remote"
)

// model is the dashboard. Each pane owns its own state; requests run as
// tea.Cmds and report back through Update, so only this loop writes state.
type model struct {
	sensor  *sensor.Model
	weather *weather.Model
	fan     *fan.Model
	spinner spinner.Model
	width   int
	height  int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func newModel(a *app) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle
	return model{
		sensor:  sensor.NewModel(a.device),
		weather: weather.NewModel(a.weather),
		fan:     fan.NewModel(a.device),
		spinner: sp,
		keys:    keys,
		help:    bhelp.New(),
	}
}

// Init fires the sensor read and the location -> weather chain side by side.
func (m model) Init() tea.Cmd {
	return tea.Batch(m.sensor.Refresh(), m.weather.Refresh(), m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Fan):
			cmds = append(cmds, m.fan.Toggle())
		case key.Matches(msg, m.keys.Refresh):
			if m.sensor.Status() != remote.Loading {
				cmds = append(cmds, m.sensor.Refresh())
			}
			if m.weather.Status() != remote.Loading {
				cmds = append(cmds, m.weather.Refresh())
			}
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// panes ignore messages that are not theirs
	cmds = append(cmds, m.sensor.Update(msg), m.weather.Update(msg), m.fan.Update(msg))

	return m, tea.Batch(cmds...)
}

func (m model) loading() bool {
	return m.sensor.Status() == remote.Loading || m.weather.Status() == remote.Loading || m.fan.Pending()
}

func (m model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left, sensor.View(m.sensor), "", fan.View(m.fan))
	right := weather.View(m.weather)

	leftW := max(28, int(float64(m.width)*0.4))
	rightW := max(28, m.width-leftW-1)
	leftRendered := lipgloss.NewStyle().Width(leftW).Render(contentStyle.Render(left))
	rightRendered := lipgloss.NewStyle().Width(rightW).Render(contentStyle.Render(right))
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, dividerStyle.Render("│"), rightRendered)

	header := headerStyle.Render(appTitle)
	if m.loading() {
		header += " " + m.spinner.View()
	}
	sep := dividerStyle.Render(strings.Repeat("─", max(0, m.width)))

	sections := []string{header, sep, columns}
	if chart := comparisonChart(m.sensor.Reading(), m.weather.Snapshot(), m.width-4); chart != "" {
		sections = append(sections, sep, contentStyle.Render(chart))
	}
	sections = append(sections, sep, m.help.View(m.keys))

	layout := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}
