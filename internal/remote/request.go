package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

var errNoHTTPClient = errors.New("http client not configured")

// Do issues a single GET against rawURL. A nil out discards the body. There is
// no retry: the caller surfaces the error and the user triggers the action again.
func Do(ctx context.Context, client *http.Client, logger *slog.Logger, rawURL string, out any) error {
	if client == nil {
		return errNoHTTPClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	reqID := uuid.NewString()
	log := logger.With("req_id", reqID, "url", redact(rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &NetworkError{URL: redact(rawURL), Err: redactErr(err)}
	}
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		err = redactErr(err)
		log.Warn("request failed", "error", err)
		return &NetworkError{URL: redact(rawURL), Err: err}
	}
	defer resp.Body.Close()

	log.Debug("request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn("unexpected status", "status", resp.StatusCode)
		return &NetworkError{URL: redact(rawURL), StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: redact(rawURL), Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		log.Warn("decode failed", "error", err)
		return &ParseError{URL: redact(rawURL), Err: err}
	}
	return nil
}
