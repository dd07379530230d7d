package cmd

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sumwatshade/cabinwatch/cmd/device"
	"github.com/sumwatshade/cabinwatch/cmd/location"
	"github.com/sumwatshade/cabinwatch/cmd/weather"
	"github.com/sumwatshade/cabinwatch/internal/remote"
)

type fakeDevice struct {
	mu      sync.Mutex
	reading device.Reading
	onErr   error
	calls   []string
}

func (f *fakeDevice) GetSensorData(context.Context) (device.Reading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "sensor")
	return f.reading, nil
}

func (f *fakeDevice) TurnBuzzerOn(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "on")
	return f.onErr
}

func (f *fakeDevice) TurnBuzzerOff(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "off")
	return nil
}

type fakeWeather struct {
	calls int
}

func (f *fakeWeather) GetCurrentWeather(context.Context, string, location.Coordinates) (weather.Snapshot, error) {
	f.calls++
	return weather.Snapshot{LocationName: "Tromsø", Country: "Norway", TemperatureC: 4.9, HumidityPct: 81}, nil
}

func newTestModel(dev *fakeDevice, ws *fakeWeather, coords *location.Coordinates) model {
	a := &app{
		device: dev,
		weather: weather.Loader{
			Service:         ws,
			Locator:         location.Static{Coords: coords},
			APIKey:          "k",
			LocationAllowed: true,
		},
	}
	return newModel(a)
}

// drain runs cmd and feeds every resulting message back into m, expanding
// batches. Spinner ticks are skipped so the loop terminates.
func drain(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil, spinner.TickMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			next, _ := m.Update(msg)
			m = next.(model)
		}
	}
	return m
}

func TestDashboard_InitLoadsBothSources(t *testing.T) {
	dev := &fakeDevice{reading: device.Reading{TemperatureC: 21.5, HumidityPct: 40}}
	ws := &fakeWeather{}
	m := newTestModel(dev, ws, &location.Coordinates{Latitude: 69.65, Longitude: 18.96})

	m = drain(t, m, m.Init())

	if m.sensor.Status() != remote.Loaded {
		t.Errorf("sensor status = %v; want loaded", m.sensor.Status())
	}
	if m.weather.Status() != remote.Loaded {
		t.Errorf("weather status = %v; want loaded", m.weather.Status())
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := next.(model).View()
	for _, want := range []string{"21.5°C", "40.0%", "4°C", "Tromsø, Norway", "FAN ON"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestDashboard_NoLocation(t *testing.T) {
	dev := &fakeDevice{}
	ws := &fakeWeather{}
	m := newTestModel(dev, ws, nil)

	m = drain(t, m, m.Init())

	if m.weather.Status() != remote.Failed || m.weather.Err() != "Unable to get location" {
		t.Errorf("weather = %v %q", m.weather.Status(), m.weather.Err())
	}
	if ws.calls != 0 {
		t.Errorf("weather endpoint called %d times", ws.calls)
	}
	if m.sensor.Status() != remote.Loaded {
		t.Errorf("sensor status = %v; the sensor flow must not depend on weather", m.sensor.Status())
	}
}

func TestDashboard_FanKey(t *testing.T) {
	dev := &fakeDevice{}
	m := newTestModel(dev, &fakeWeather{}, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m = drain(t, next.(model), cmd)
	if !m.fan.On() {
		t.Fatal("fan not on after pressing f")
	}

	dev.onErr = errors.New("unreachable")
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m = drain(t, next.(model), cmd)
	if m.fan.On() {
		t.Fatal("fan off call succeeded, state should be off")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m = drain(t, next.(model), cmd)
	if m.fan.On() {
		t.Error("failed turn-on flipped the fan state")
	}
	if !strings.Contains(m.fan.Err(), "unreachable") {
		t.Errorf("fan error = %q", m.fan.Err())
	}
}

func (f *fakeDevice) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func TestDashboard_Refresh(t *testing.T) {
	dev := &fakeDevice{reading: device.Reading{TemperatureC: 18, HumidityPct: 55}}
	ws := &fakeWeather{}
	m := newTestModel(dev, ws, &location.Coordinates{Latitude: 69.65, Longitude: 18.96})
	m = drain(t, m, m.Init())
	if dev.count("sensor") != 1 || ws.calls != 1 {
		t.Fatalf("after init: sensor calls = %d, weather calls = %d; want 1 and 1", dev.count("sensor"), ws.calls)
	}

	refresh := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}
	next, first := m.Update(refresh)
	m = next.(model)
	if m.sensor.Status() != remote.Loading || m.weather.Status() != remote.Loading {
		t.Fatalf("after r: sensor %v, weather %v; want both loading", m.sensor.Status(), m.weather.Status())
	}

	// a second press while both sources are loading starts nothing new
	next, second := m.Update(refresh)
	m = next.(model)
	m = drain(t, m, second)
	if dev.count("sensor") != 1 || ws.calls != 1 {
		t.Errorf("r while loading: sensor calls = %d, weather calls = %d; want no new requests", dev.count("sensor"), ws.calls)
	}

	m = drain(t, m, first)
	if dev.count("sensor") != 2 || ws.calls != 2 {
		t.Errorf("after refresh: sensor calls = %d, weather calls = %d; want 2 and 2", dev.count("sensor"), ws.calls)
	}
	if m.sensor.Status() != remote.Loaded || m.weather.Status() != remote.Loaded {
		t.Errorf("after refresh: sensor %v, weather %v; want both loaded", m.sensor.Status(), m.weather.Status())
	}
}

func TestDashboard_Quit(t *testing.T) {
	m := newTestModel(&fakeDevice{}, &fakeWeather{}, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
