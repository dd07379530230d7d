package fan

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sumwatshade/cabinwatch/cmd/device"
)

// ToggledMsg reports the outcome of one on/off call. Target is the state that
// was requested.
type ToggledMsg struct {
	Target bool
	Err    error
}

// Model owns the buzzer (fan) state. The device never reports its state, so
// On is only ever changed after the device accepted a command.
type Model struct {
	service device.Service
	on      bool
	pending bool
	errMsg  string
}

func NewModel(service device.Service) *Model {
	return &Model{service: service}
}

func (m *Model) On() bool { return m.on }

// Pending reports whether a toggle is in flight.
func (m *Model) Pending() bool { return m.pending }

func (m *Model) Err() string { return m.errMsg }

// Toggle sends the opposite of the current state. A toggle pressed while
// another is in flight is dropped and returns nil.
func (m *Model) Toggle() tea.Cmd {
	if m.pending {
		return nil
	}
	m.pending = true
	target := !m.on
	svc := m.service
	return func() tea.Msg {
		var err error
		if target {
			err = svc.TurnBuzzerOn(context.Background())
		} else {
			err = svc.TurnBuzzerOff(context.Background())
		}
		return ToggledMsg{Target: target, Err: err}
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	toggled, ok := msg.(ToggledMsg)
	if !ok {
		return nil
	}
	m.pending = false
	if toggled.Err != nil {
		m.errMsg = "Failed to toggle buzzer: " + toggled.Err.Error()
		return nil
	}
	m.on = toggled.Target
	m.errMsg = ""
	return nil
}
