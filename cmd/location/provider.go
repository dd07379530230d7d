package location

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/kelvins/geocoder"
)

// Coordinates is a point on the globe in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Query renders the coordinates the way weatherapi.com expects its q parameter.
func (c Coordinates) Query() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Provider returns the current coordinates, or nil when they cannot be
// determined for any reason. It never retries.
type Provider interface {
	CurrentLocation(ctx context.Context) *Coordinates
}

var (
	_ Provider = Static{}
	_ Provider = (*Geocoded)(nil)
	_ Provider = Chain{}
)

// Static always answers with the same fix, which may be nil.
type Static struct {
	Coords *Coordinates
}

func (s Static) CurrentLocation(context.Context) *Coordinates {
	if s.Coords == nil {
		return nil
	}
	c := *s.Coords
	return &c
}

// Geocoded resolves a configured city/country pair through the Google
// geocoding API.
type Geocoded struct {
	City    string
	Country string
	logger  *slog.Logger
	geocode func(geocoder.Address) (geocoder.Location, error)
}

// NewGeocoded sets the package-level geocoder key; geocoder only supports one.
func NewGeocoded(apiKey, city, country string, logger *slog.Logger) *Geocoded {
	geocoder.ApiKey = apiKey
	return &Geocoded{City: city, Country: country, logger: logger, geocode: geocoder.Geocoding}
}

func (g *Geocoded) CurrentLocation(ctx context.Context) *Coordinates {
	if g.City == "" || ctx.Err() != nil {
		return nil
	}
	loc, err := g.geocode(geocoder.Address{City: g.City, Country: g.Country})
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("geocoding failed", "city", g.City, "country", g.Country, "error", err)
		}
		return nil
	}
	return &Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}
}

// Chain asks each provider in order and returns the first fix.
type Chain []Provider

func (c Chain) CurrentLocation(ctx context.Context) *Coordinates {
	for _, p := range c {
		if p == nil {
			continue
		}
		if coords := p.CurrentLocation(ctx); coords != nil {
			return coords
		}
	}
	return nil
}
