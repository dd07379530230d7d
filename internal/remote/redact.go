package remote

import (
	"errors"
	"net/url"
)

// redact strips the api key from a url before it reaches logs or error text.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// redactErr scrubs the url carried by a *url.Error, which the http client
// embeds verbatim in its message.
func redactErr(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = redact(ue.URL)
	}
	return err
}
