// Package fetch retrieves HTML documents over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"h2f/config"
)

// StatusError is returned when upstream responds with a non-200 code.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unable to fetch %s: upstream returned %s", e.URL, http.StatusText(e.Code))
}

type Client struct {
	http      *http.Client
	userAgent string
	log       *zap.Logger
}

func NewClient(conf *config.FetchConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		http:      &http.Client{Timeout: time.Duration(conf.TimeoutSec) * time.Second},
		userAgent: conf.UserAgent,
		log:       log.Named("fetch"),
	}
}

// Fetch downloads a page and returns its body as UTF-8 text. Pages in other
// encodings are transcoded based on Content-Type and document meta tags.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("unable to prepare request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("unable to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{URL: url, Code: resp.StatusCode}
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("unable to decode %s: %w", url, err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", url, err)
	}

	c.log.Debug("Page fetched",
		zap.String("url", url),
		zap.Int("size", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	return string(body), nil
}
