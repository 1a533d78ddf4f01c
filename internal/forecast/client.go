package forecast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/nsjourney/internal/metrics"
)

// DefaultBaseURL is the OpenWeather 2.5 API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// DefaultUnits is the unit system used when none is configured.
const DefaultUnits = "metric"

// Request outcomes recorded in metrics.
const (
	resultOK        = "ok"
	resultAPIError  = "api_error"
	resultTransport = "transport_error"
	resultDecode    = "decode_error"
)

// Client is a minimal OpenWeather forecast client.
type Client struct {
	apiKey     string
	baseURL    string
	units      string
	httpClient *http.Client
	log        logr.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithUnits sets the unit system (standard, metric or imperial).
func WithUnits(units string) Option {
	return func(c *Client) {
		if units != "" {
			c.units = units
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a forecast client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    DefaultBaseURL,
		units:      DefaultUnits,
		httpClient: &http.Client{},
		log:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Units returns the unit system requests are made in.
func (c *Client) Units() string {
	return c.units
}

// URL returns the forecast request URL for q.
func (c *Client) URL(q Query) string {
	params := url.Values{}
	params.Set("q", q.String())
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)
	return c.baseURL + "/forecast?" + params.Encode()
}

// Fetch validates and normalizes q, then requests its forecast. Input
// problems are reported before any request is made.
func (c *Client) Fetch(ctx context.Context, q Query) (*Response, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	q = q.Normalize()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, result, err := c.do(req)
	metrics.RecordForecastRequest(result, time.Since(start))
	c.log.V(1).Info("forecast request", "query", q.Label(), "result", result, "elapsed", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fetch forecast for %s: %w", q.Label(), err)
	}
	return resp, nil
}

func (c *Client) do(req *http.Request) (*Response, string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, resultTransport, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resultTransport, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Message = eb.Message
		}
		return nil, resultAPIError, apiErr
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, resultDecode, fmt.Errorf("parse response: %w (status %d)", err, resp.StatusCode)
	}
	return &out, resultOK, nil
}

// IsAPIError reports whether err carries an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
