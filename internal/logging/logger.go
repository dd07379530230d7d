package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"github.com/sumwatshade/cabinwatch/internal/config"
)

func New(cfg config.Config, w io.Writer) *slog.Logger {
	if cfg.LogFormat == "json" {
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: cfg.LogLevel,
		})
		return slog.New(h).With("app", "cabinwatch")
	}

	h := tint.NewHandler(w, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	})
	return slog.New(h).With("app", "cabinwatch")
}
