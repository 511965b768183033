package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// API Docs: https://open-meteo.com/en/docs
// Sample requests:
// - https://api.open-meteo.com/v1/forecast?latitude=48.356&longitude=24.421&current=temperature_2m
// - https://api.open-meteo.com/v1/forecast?latitude=48.356&longitude=24.421&daily=temperature_2m_max&forecast_days=14&timezone=auto
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"

	defaultCurrentTimeout  = 10 * time.Second
	defaultForecastTimeout = 15 * time.Second
)

// Option configures a ForecastClient
type Option func(*ForecastClient)

// WithBaseURL points the client at a different forecast endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *ForecastClient) { c.baseURL = baseURL }
}

// WithTimeouts sets the per-call timeouts for current and daily requests
func WithTimeouts(current, forecast time.Duration) Option {
	return func(c *ForecastClient) {
		c.currentTimeout = current
		c.forecastTimeout = forecast
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *ForecastClient) { c.httpClient = httpClient }
}

type ForecastClient struct {
	httpClient      *http.Client
	baseURL         string
	currentTimeout  time.Duration
	forecastTimeout time.Duration
	logger          *slog.Logger
}

func NewForecastClient(logger *slog.Logger, opts ...Option) *ForecastClient {
	c := &ForecastClient{
		httpClient:      &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		baseURL:         baseForecastURL,
		currentTimeout:  defaultCurrentTimeout,
		forecastTimeout: defaultForecastTimeout,
		logger:          logger.With("component", "openmeteo-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCurrent fetches the instantaneous 2m temperature for the given coordinates
func (c *ForecastClient) GetCurrent(ctx context.Context, latitude, longitude float64) (*CurrentAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", formatCoordinate(latitude))
	q.Set("longitude", formatCoordinate(longitude))
	q.Set("current", "temperature_2m")
	u.RawQuery = q.Encode()

	var apiResp CurrentAPIResponse
	if err := c.get(ctx, u, c.currentTimeout, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// GetDailyForecast fetches the daily maximum 2m temperature for the next forecastDays days.
// An empty timezone falls back to "auto", which lets Open-Meteo resolve it from the coordinates.
func (c *ForecastClient) GetDailyForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*DailyAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	if timezone == "" {
		timezone = "auto"
	}

	q := u.Query()
	q.Set("latitude", formatCoordinate(latitude))
	q.Set("longitude", formatCoordinate(longitude))
	q.Set("daily", "temperature_2m_max")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timezone", timezone)
	u.RawQuery = q.Encode()

	var apiResp DailyAPIResponse
	if err := c.get(ctx, u, c.forecastTimeout, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

func (c *ForecastClient) get(ctx context.Context, u *url.URL, timeout time.Duration, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	c.logger.Debug("fetching open-meteo forecast", "url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch open-meteo forecast", "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("open-meteo API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode open-meteo response", "error", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// formatCoordinate renders a coordinate without trailing zeros (48.356, not 48.356000)
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
