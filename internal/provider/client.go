// Package provider fetches current conditions from OpenWeatherMap.
package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lox/weathercard/internal/httputil"
	"github.com/lox/weathercard/internal/metrics"
)

// DefaultBaseURL is the public OpenWeatherMap API.
const DefaultBaseURL = "https://api.openweathermap.org"

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// Fetcher returns the raw current-weather payload for a city.
type Fetcher interface {
	Current(ctx context.Context, city string) ([]byte, error)
}

// Client talks to the OpenWeatherMap current weather endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a client for baseURL. An empty apiKey is allowed; every
// lookup then fails with ErrMissingKey so the caller can surface it.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httputil.NewClient(0),
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// Current fetches metric current conditions for city. The body is returned
// undecoded; see weather.Normalize.
func (c *Client) Current(ctx context.Context, city string) ([]byte, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyQuery
	}
	if c.apiKey == "" {
		return nil, ErrMissingKey
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)
	endpoint := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", httputil.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ProviderLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("error").Inc()
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	metrics.ProviderCallsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}
