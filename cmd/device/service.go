package device

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sumwatshade/cabinwatch/internal/remote"
)

// Reading is a single temperature/humidity sample from the cabin sensor.
type Reading struct {
	TemperatureC float64 `json:"temperature"`
	HumidityPct  float64 `json:"humidity"`
}

// Service talks to the device's local HTTP API. Every call is one GET with
// no body and no auth.
type Service interface {
	GetSensorData(ctx context.Context) (Reading, error)
	TurnBuzzerOn(ctx context.Context) error
	TurnBuzzerOff(ctx context.Context) error
}

var _ Service = (*httpService)(nil)

type httpService struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewService returns a Service rooted at baseURL, e.g. "http://172.20.10.5/".
func NewService(baseURL string, client *http.Client, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &httpService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger.With("component", "device"),
	}
}

func (s *httpService) GetSensorData(ctx context.Context) (Reading, error) {
	var r Reading
	if err := remote.Do(ctx, s.client, s.logger, s.baseURL+"/sensor", &r); err != nil {
		return Reading{}, err
	}
	s.logger.Info("sensor reading", "temperature", r.TemperatureC, "humidity", r.HumidityPct)
	return r, nil
}

func (s *httpService) TurnBuzzerOn(ctx context.Context) error {
	return s.buzzer(ctx, "on")
}

func (s *httpService) TurnBuzzerOff(ctx context.Context) error {
	return s.buzzer(ctx, "off")
}

func (s *httpService) buzzer(ctx context.Context, state string) error {
	if err := remote.Do(ctx, s.client, s.logger, s.baseURL+"/buzzer/"+state, nil); err != nil {
		return err
	}
	s.logger.Info("buzzer switched", "state", state)
	return nil
}
