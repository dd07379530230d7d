package remote

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDo(t *testing.T) {
	var gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-ID")
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`{"value": 21.5, "extra": true}`))
		case "/empty":
			w.WriteHeader(http.StatusOK)
		case "/broken":
			w.Write([]byte(`{"value": `))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	t.Run("decodes body and ignores unknown fields", func(t *testing.T) {
		var out struct {
			Value float64 `json:"value"`
		}
		if err := Do(ctx, srv.Client(), nil, srv.URL+"/ok", &out); err != nil {
			t.Fatalf("Do() error = %v", err)
		}
		if out.Value != 21.5 {
			t.Errorf("Value = %v; want 21.5", out.Value)
		}
		if gotReqID == "" {
			t.Error("X-Request-ID header not sent")
		}
	})

	t.Run("nil out discards body", func(t *testing.T) {
		if err := Do(ctx, srv.Client(), nil, srv.URL+"/empty", nil); err != nil {
			t.Fatalf("Do() error = %v", err)
		}
	})

	t.Run("non-2xx is a network error", func(t *testing.T) {
		err := Do(ctx, srv.Client(), nil, srv.URL+"/fail", nil)
		var netErr *NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("error = %v; want *NetworkError", err)
		}
		if netErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("StatusCode = %d; want 500", netErr.StatusCode)
		}
	})

	t.Run("malformed json is a parse error", func(t *testing.T) {
		var out map[string]any
		err := Do(ctx, srv.Client(), nil, srv.URL+"/broken", &out)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("error = %v; want *ParseError", err)
		}
	})

	t.Run("connection failure is a network error", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		url := dead.URL
		dead.Close()

		err := Do(ctx, http.DefaultClient, nil, url+"/sensor", nil)
		var netErr *NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("error = %v; want *NetworkError", err)
		}
		if netErr.StatusCode != 0 {
			t.Errorf("StatusCode = %d; want 0", netErr.StatusCode)
		}
	})

	t.Run("connection failure keeps the api key out of error and log", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		url := dead.URL
		dead.Close()

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))
		err := Do(ctx, http.DefaultClient, logger, url+"/current.json?key=SUPERSECRET&q=1,2", nil)
		if err == nil {
			t.Fatal("Do() error = nil; want error")
		}
		if strings.Contains(err.Error(), "SUPERSECRET") {
			t.Errorf("error = %q; api key leaked", err)
		}
		if strings.Contains(logs.String(), "SUPERSECRET") {
			t.Errorf("log = %q; api key leaked", logs.String())
		}
	})

	t.Run("nil client", func(t *testing.T) {
		if err := Do(ctx, nil, nil, srv.URL+"/ok", nil); err == nil {
			t.Fatal("Do() error = nil; want error")
		}
	})
}

func TestRedact(t *testing.T) {
	got := redact("https://api.weatherapi.com/v1/current.json?key=secret&q=1,2")
	if strings.Contains(got, "secret") {
		t.Errorf("redact() = %q; api key leaked", got)
	}
	if !strings.Contains(got, "REDACTED") {
		t.Errorf("redact() = %q; want REDACTED placeholder", got)
	}

	plain := "http://172.20.10.5/sensor"
	if got := redact(plain); got != plain {
		t.Errorf("redact(%q) = %q; want unchanged", plain, got)
	}
}
