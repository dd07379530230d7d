package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

type Config struct {
	DeviceURL  string `validate:"required,url"`
	WeatherURL string `validate:"required,url"`
	WeatherKey string

	LocationEnabled bool
	Latitude        *float64 `validate:"omitempty,latitude"`
	Longitude       *float64 `validate:"omitempty,longitude"`
	City            string
	Country         string
	GeocoderKey     string

	HTTPTimeout time.Duration `validate:"gt=0"`

	LogLevel  slog.Level
	LogFormat string `validate:"oneof=text json"`
	LogFile   string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("device.url", "http://172.20.10.5/")
	v.SetDefault("weather.url", "https://api.weatherapi.com/v1")
	v.SetDefault("weather.key", "")
	v.SetDefault("location.enabled", true)
	v.SetDefault("location.city", "")
	v.SetDefault("location.country", "")
	v.SetDefault("location.geocoder_key", "")
	v.SetDefault("http.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	if home, err := os.UserHomeDir(); err == nil {
		v.SetDefault("log.file", filepath.Join(home, ".cabinwatch", "cabinwatch.log"))
	}
}

// Load reads a validated Config out of v.
func Load(v *viper.Viper) (Config, error) {
	level, err := parseLogLevel(v.GetString("log.level"))
	if err != nil {
		return Config{}, err
	}

	timeout, err := time.ParseDuration(strings.TrimSpace(v.GetString("http.timeout")))
	if err != nil {
		return Config{}, fmt.Errorf("invalid http.timeout %q: %w", v.GetString("http.timeout"), err)
	}

	cfg := Config{
		DeviceURL:       strings.TrimSpace(v.GetString("device.url")),
		WeatherURL:      strings.TrimRight(strings.TrimSpace(v.GetString("weather.url")), "/"),
		WeatherKey:      strings.TrimSpace(v.GetString("weather.key")),
		LocationEnabled: v.GetBool("location.enabled"),
		City:            strings.TrimSpace(v.GetString("location.city")),
		Country:         strings.TrimSpace(v.GetString("location.country")),
		GeocoderKey:     strings.TrimSpace(v.GetString("location.geocoder_key")),
		HTTPTimeout:     timeout,
		LogLevel:        level,
		LogFormat:       strings.ToLower(strings.TrimSpace(v.GetString("log.format"))),
		LogFile:         strings.TrimSpace(v.GetString("log.file")),
	}

	// lat/lon are only meaningful as a pair
	if v.IsSet("location.lat") && v.IsSet("location.lon") {
		lat, lon := v.GetFloat64("location.lat"), v.GetFloat64("location.lon")
		cfg.Latitude, cfg.Longitude = &lat, &lon
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log.level %q (allowed: debug, info, warn, error)", s)
	}
}
