package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sumwatshade/cabinwatch/cmd/device"
	"github.com/sumwatshade/cabinwatch/cmd/location"
	"github.com/sumwatshade/cabinwatch/cmd/weather"
	"github.com/sumwatshade/cabinwatch/internal/config"
	"github.com/sumwatshade/cabinwatch/internal/logging"
)

// app bundles the clients every command works with. Clients are built once
// and handed to the screens; nothing is global.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	device  device.Service
	weather weather.Loader
}

func loadConfig() (config.Config, error) {
	return config.Load(viper.GetViper())
}

func newApp(cfg config.Config, logOut io.Writer) *app {
	logger := logging.New(cfg, logOut)
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	return &app{
		cfg:    cfg,
		logger: logger,
		device: device.NewService(cfg.DeviceURL, client, logger),
		weather: weather.Loader{
			Service:         weather.NewService(cfg.WeatherURL, client, logger),
			Locator:         newLocator(cfg, logger),
			APIKey:          cfg.WeatherKey,
			LocationAllowed: cfg.LocationEnabled,
		},
	}
}

// newLocator prefers explicit coordinates and falls back to geocoding the
// configured city.
func newLocator(cfg config.Config, logger *slog.Logger) location.Provider {
	var chain location.Chain
	if cfg.Latitude != nil && cfg.Longitude != nil {
		chain = append(chain, location.Static{Coords: &location.Coordinates{Latitude: *cfg.Latitude, Longitude: *cfg.Longitude}})
	}
	if cfg.City != "" && cfg.GeocoderKey != "" {
		chain = append(chain, location.NewGeocoded(cfg.GeocoderKey, cfg.City, cfg.Country, logger))
	}
	return chain
}

// openLogFile opens the dashboard log; the terminal itself belongs to the UI.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("log.file is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
