package weather

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/sumwatshade/cabinwatch/cmd/location"
	"github.com/sumwatshade/cabinwatch/internal/remote"
)

// Service fetches current conditions for a pair of coordinates.
type Service interface {
	GetCurrentWeather(ctx context.Context, apiKey string, coords location.Coordinates) (Snapshot, error)
}

var _ Service = (*weatherAPIService)(nil)

var errNoAPIKey = errors.New("weather api key is not configured")

// weatherAPIService implements Service for weatherapi.com.
type weatherAPIService struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewService returns a weatherapi.com client, baseURL being e.g.
// "https://api.weatherapi.com/v1".
func NewService(baseURL string, client *http.Client, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &weatherAPIService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger.With("component", "weather"),
	}
}

// currentResponse mirrors the subset of current.json we use. Anything else
// in the payload is ignored.
type currentResponse struct {
	Location struct {
		Name      string `json:"name"`
		Country   string `json:"country"`
		Localtime string `json:"localtime"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
		Humidity   float64 `json:"humidity"`
		FeelsLikeC float64 `json:"feelslike_c"`
		WindKph    float64 `json:"wind_kph"`
	} `json:"current"`
}

func (s *weatherAPIService) GetCurrentWeather(ctx context.Context, apiKey string, coords location.Coordinates) (Snapshot, error) {
	if apiKey == "" {
		return Snapshot{}, errNoAPIKey
	}

	values := url.Values{}
	values.Set("key", apiKey)
	values.Set("q", coords.Query())
	u := s.baseURL + "/current.json?" + values.Encode()

	var payload currentResponse
	if err := remote.Do(ctx, s.client, s.logger, u, &payload); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		LocationName:  payload.Location.Name,
		Country:       payload.Location.Country,
		LocalTime:     payload.Location.Localtime,
		TemperatureC:  payload.Current.TempC,
		FeelsLikeC:    payload.Current.FeelsLikeC,
		HumidityPct:   payload.Current.Humidity,
		WindKph:       payload.Current.WindKph,
		ConditionText: payload.Current.Condition.Text,
		ConditionIcon: payload.Current.Condition.Icon,
	}
	s.logger.Info("weather loaded", "location", snap.LocationName, "temp_c", snap.TemperatureC)
	return snap, nil
}
