package nws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"noaa-forecast/internal/types"
)

// API Docs: https://www.weather.gov/documentation/services-web-api
// Sample requests:
// - https://api.weather.gov/points/40.8932,-74.0117
// - https://api.weather.gov/gridpoints/OKX/33,37/forecast/hourly
const (
	DefaultBaseURL   = "https://api.weather.gov"
	DefaultUserAgent = "noaa-forecast (contact@example.com)"
)

var (
	// ErrMissingForecastURLs is returned when a point document lacks the
	// forecast or hourly forecast links
	ErrMissingForecastURLs = errors.New("missing forecast URLs in point response")
	// ErrNotFound is returned for locations the NWS has no forecast for
	ErrNotFound = errors.New("not found")
)

type Options struct {
	BaseURL           string
	UserAgent         string
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 1
	}
	if opts.Burst <= 0 {
		opts.Burst = 3
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst),
		logger:     logger.With("component", "nws-client"),
	}
}

// GetPoint resolves the forecast office links for a coordinate
func (c *Client) GetPoint(ctx context.Context, coords types.Coords) (*PointAPIResponse, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/points/%s", coords.String())

	var apiResp PointAPIResponse
	if err := c.getJSON(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// GetForecast fetches a daily or hourly forecast document by its absolute URL
func (c *Client) GetForecast(ctx context.Context, forecastURL string) (*ForecastAPIResponse, error) {
	var apiResp ForecastAPIResponse
	if err := c.getJSON(ctx, forecastURL, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// GetGridData fetches the raw gridpoints document by its absolute URL
func (c *Client) GetGridData(ctx context.Context, gridURL string) (*GridAPIResponse, error) {
	var apiResp GridAPIResponse
	if err := c.getJSON(ctx, gridURL, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// GetForecastData resolves the point and then fetches the daily, hourly and
// grid documents concurrently. A grid failure is logged and leaves Grid nil.
func (c *Client) GetForecastData(ctx context.Context, coords types.Coords) (*ForecastData, error) {
	point, err := c.GetPoint(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("failed to get point: %w", err)
	}

	props := point.Properties
	if props.Forecast == "" || props.ForecastHourly == "" {
		return nil, ErrMissingForecastURLs
	}

	data := &ForecastData{Point: point}

	var (
		wg                  sync.WaitGroup
		dailyErr, hourlyErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		data.Daily, dailyErr = c.GetForecast(ctx, props.Forecast)
	}()
	go func() {
		defer wg.Done()
		data.Hourly, hourlyErr = c.GetForecast(ctx, props.ForecastHourly)
	}()

	if props.ForecastGridData != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			grid, err := c.GetGridData(ctx, props.ForecastGridData)
			if err != nil {
				c.logger.Warn("failed to get grid data",
					"url", props.ForecastGridData,
					"error", err,
				)
				return
			}
			data.Grid = grid
		}()
	}

	wg.Wait()

	if dailyErr != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", dailyErr)
	}
	if hourlyErr != nil {
		return nil, fmt.Errorf("failed to get hourly forecast: %w", hourlyErr)
	}

	return data, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	c.logger.Debug("fetching", "url", rawURL)

	// Make the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", ErrNotFound, string(body))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
