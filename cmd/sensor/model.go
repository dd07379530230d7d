package sensor

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sumwatshade/cabinwatch/cmd/device"
	"github.com/sumwatshade/cabinwatch/internal/remote"
)

// FetchedMsg carries the outcome of one sensor read.
type FetchedMsg struct {
	Reading device.Reading
	Err     error
}

// Model is the cabin sensor pane. A failed refresh keeps the last good
// reading around as stale context, but Reading only answers when loaded.
type Model struct {
	service device.Service
	status  remote.Status
	reading *device.Reading
	last    *device.Reading
	errMsg  string
}

func NewModel(service device.Service) *Model {
	return &Model{service: service}
}

func (m *Model) Status() remote.Status { return m.status }

func (m *Model) Reading() *device.Reading {
	if m.status != remote.Loaded {
		return nil
	}
	return m.reading
}

// Last is the most recent successful reading, regardless of current status.
func (m *Model) Last() *device.Reading { return m.last }

func (m *Model) Err() string { return m.errMsg }

// Refresh starts a sensor read.
func (m *Model) Refresh() tea.Cmd {
	m.status = remote.Loading
	m.reading = nil
	m.errMsg = ""
	svc := m.service
	return func() tea.Msg {
		r, err := svc.GetSensorData(context.Background())
		return FetchedMsg{Reading: r, Err: err}
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	fetched, ok := msg.(FetchedMsg)
	if !ok {
		return nil
	}
	if fetched.Err != nil {
		m.status = remote.Failed
		m.reading = nil
		m.errMsg = "Failed to load sensor data: " + fetched.Err.Error()
		return nil
	}
	r := fetched.Reading
	m.status = remote.Loaded
	m.reading = &r
	m.last = &r
	m.errMsg = ""
	return nil
}

// Celsius labels a raw sensor value without rounding it, e.g. "21.5°C".
func Celsius(v float64) string { return number(v) + "°C" }

// Percent labels a raw humidity value, e.g. "40.0%".
func Percent(v float64) string { return number(v) + "%" }

func number(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
