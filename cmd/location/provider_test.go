package location

import (
	"context"
	"errors"
	"testing"

	"github.com/kelvins/geocoder"
)

type countingProvider struct {
	coords *Coordinates
	calls  int
}

func (p *countingProvider) CurrentLocation(context.Context) *Coordinates {
	p.calls++
	return p.coords
}

func TestStatic(t *testing.T) {
	if got := (Static{}).CurrentLocation(context.Background()); got != nil {
		t.Errorf("CurrentLocation() = %v; want nil", got)
	}

	fix := &Coordinates{Latitude: 59.33, Longitude: 18.06}
	got := Static{Coords: fix}.CurrentLocation(context.Background())
	if got == nil || *got != *fix {
		t.Fatalf("CurrentLocation() = %v; want %v", got, fix)
	}
	got.Latitude = 0
	if fix.Latitude != 59.33 {
		t.Error("caller mutation leaked into provider")
	}
}

func TestGeocoded(t *testing.T) {
	t.Run("resolves city", func(t *testing.T) {
		var asked geocoder.Address
		g := &Geocoded{City: "Oslo", Country: "Norway", geocode: func(a geocoder.Address) (geocoder.Location, error) {
			asked = a
			return geocoder.Location{Latitude: 59.91, Longitude: 10.75}, nil
		}}
		got := g.CurrentLocation(context.Background())
		if got == nil || got.Latitude != 59.91 || got.Longitude != 10.75 {
			t.Fatalf("CurrentLocation() = %v", got)
		}
		if asked.City != "Oslo" || asked.Country != "Norway" {
			t.Errorf("geocoded address = %+v", asked)
		}
	})

	t.Run("failure yields nil", func(t *testing.T) {
		g := &Geocoded{City: "Oslo", geocode: func(geocoder.Address) (geocoder.Location, error) {
			return geocoder.Location{}, errors.New("quota exceeded")
		}}
		if got := g.CurrentLocation(context.Background()); got != nil {
			t.Errorf("CurrentLocation() = %v; want nil", got)
		}
	})

	t.Run("no city skips lookup", func(t *testing.T) {
		g := &Geocoded{geocode: func(geocoder.Address) (geocoder.Location, error) {
			t.Fatal("geocoder called without a city")
			return geocoder.Location{}, nil
		}}
		if got := g.CurrentLocation(context.Background()); got != nil {
			t.Errorf("CurrentLocation() = %v; want nil", got)
		}
	})
}

func TestChain(t *testing.T) {
	first := &countingProvider{}
	second := &countingProvider{coords: &Coordinates{Latitude: 1, Longitude: 2}}
	third := &countingProvider{coords: &Coordinates{Latitude: 3, Longitude: 4}}

	got := Chain{first, nil, second, third}.CurrentLocation(context.Background())
	if got == nil || got.Latitude != 1 {
		t.Fatalf("CurrentLocation() = %v; want second provider's fix", got)
	}
	if first.calls != 1 || second.calls != 1 || third.calls != 0 {
		t.Errorf("calls = %d/%d/%d; want 1/1/0", first.calls, second.calls, third.calls)
	}

	if got := (Chain{}).CurrentLocation(context.Background()); got != nil {
		t.Errorf("empty chain = %v; want nil", got)
	}
}

func TestCoordinatesQuery(t *testing.T) {
	tests := []struct {
		c    Coordinates
		want string
	}{
		{c: Coordinates{Latitude: 48.8566, Longitude: -2.5}, want: "48.8566,-2.5"},
		{c: Coordinates{Latitude: 0.00001, Longitude: 2}, want: "0.00001,2"},
		{c: Coordinates{Latitude: -0.0000005, Longitude: 179.999999}, want: "-0.0000005,179.999999"},
	}
	for _, tt := range tests {
		if got := tt.c.Query(); got != tt.want {
			t.Errorf("%+v.Query() = %q; want %q", tt.c, got, tt.want)
		}
	}
}
