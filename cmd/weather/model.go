package weather

import (
	"context"
	"errors"
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sumwatshade/cabinwatch/cmd/location"
	"github.com/sumwatshade/cabinwatch/internal/remote"
)

// Snapshot is the most recent successful read of current conditions.
type Snapshot struct {
	LocationName  string  `json:"location"`
	Country       string  `json:"country"`
	LocalTime     string  `json:"local_time"`
	TemperatureC  float64 `json:"temperature_c"`
	FeelsLikeC    float64 `json:"feels_like_c"`
	HumidityPct   float64 `json:"humidity_pct"`
	WindKph       float64 `json:"wind_kph"`
	ConditionText string  `json:"condition"`
	ConditionIcon string  `json:"condition_icon,omitempty"`
}

// Temperature is the display form of TemperatureC, truncated toward zero.
func (s Snapshot) Temperature() string { return degrees(s.TemperatureC) }

func (s Snapshot) FeelsLike() string { return degrees(s.FeelsLikeC) }

func (s Snapshot) Humidity() string { return fmt.Sprintf("%d%%", int(math.Trunc(s.HumidityPct))) }

func (s Snapshot) Wind() string { return fmt.Sprintf("%d km/h", int(math.Trunc(s.WindKph))) }

func (s Snapshot) Place() string {
	if s.Country == "" {
		return s.LocationName
	}
	return s.LocationName + ", " + s.Country
}

func degrees(v float64) string {
	return fmt.Sprintf("%d°C", int(math.Trunc(v)))
}

// Loader runs the location -> weather chain.
type Loader struct {
	Service Service
	Locator location.Provider
	APIKey  string
	// LocationAllowed false behaves like a denied location permission.
	LocationAllowed bool
}

// Load resolves coordinates then fetches the weather. The weather endpoint
// is never called without a fix.
func (l Loader) Load(ctx context.Context) (Snapshot, error) {
	if !l.LocationAllowed {
		return Snapshot{}, remote.ErrLocationDenied
	}
	var coords *location.Coordinates
	if l.Locator != nil {
		coords = l.Locator.CurrentLocation(ctx)
	}
	if coords == nil {
		return Snapshot{}, remote.ErrLocationUnavailable
	}
	return l.Service.GetCurrentWeather(ctx, l.APIKey, *coords)
}

// ErrorMessage turns a Load error into the string shown in the weather pane.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, remote.ErrLocationDenied):
		return "Location permission required"
	case errors.Is(err, remote.ErrLocationUnavailable):
		return "Unable to get location"
	default:
		return "Failed to load weather: " + err.Error()
	}
}

// LoadedMsg carries the outcome of one weather load.
type LoadedMsg struct {
	Snapshot Snapshot
	Err      error
}

// Model is the weather pane state. It is either not loaded, loading, loaded
// with a snapshot, or failed with a message.
type Model struct {
	loader   Loader
	status   remote.Status
	snapshot *Snapshot
	errMsg   string
}

func NewModel(loader Loader) *Model {
	return &Model{loader: loader}
}

func (m *Model) Status() remote.Status { return m.status }

// Snapshot returns the loaded snapshot, or nil unless the pane is loaded.
func (m *Model) Snapshot() *Snapshot {
	if m.status != remote.Loaded {
		return nil
	}
	return m.snapshot
}

func (m *Model) Err() string { return m.errMsg }

// Refresh moves the pane to loading and returns the command that performs
// the load off the render loop.
func (m *Model) Refresh() tea.Cmd {
	m.status = remote.Loading
	m.snapshot = nil
	m.errMsg = ""
	loader := m.loader
	return func() tea.Msg {
		snap, err := loader.Load(context.Background())
		return LoadedMsg{Snapshot: snap, Err: err}
	}
}

// Update applies a LoadedMsg; other messages are ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(LoadedMsg)
	if !ok {
		return nil
	}
	if loaded.Err != nil {
		m.status = remote.Failed
		m.snapshot = nil
		m.errMsg = ErrorMessage(loaded.Err)
		return nil
	}
	snap := loaded.Snapshot
	m.status = remote.Loaded
	m.snapshot = &snap
	m.errMsg = ""
	return nil
}
