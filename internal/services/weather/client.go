package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shuv1824/envhealth/internal/types"
	"golang.org/x/time/rate"
)

// Endpoints are the Open-Meteo base URLs the client talks to.
type Endpoints struct {
	Geocoding  string
	Forecast   string
	Archive    string
	AirQuality string
}

// DefaultEndpoints returns the public Open-Meteo endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Geocoding:  "https://geocoding-api.open-meteo.com/v1/search",
		Forecast:   "https://api.open-meteo.com/v1/forecast",
		Archive:    "https://archive-api.open-meteo.com/v1/archive",
		AirQuality: "https://air-quality-api.open-meteo.com/v1/air-quality",
	}
}

// APIError is returned when a provider answers with a non-200 status.
type APIError struct {
	Endpoint   string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API returned status %d", e.Endpoint, e.StatusCode)
}

// Client fetches geocoding, forecast, archive and air quality data. Every
// request waits on a shared rate limiter and is attempted exactly once.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	endpoints  Endpoints
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on the client's HTTP client,
// keeping its transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithEndpoints points the client at different base URLs.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) { c.endpoints = e }
}

// WithRateLimit sets the maximum request rate. rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a client. Open-Meteo's free tier allows about 600 calls
// a minute, so the default limit is 10 requests per second with a burst of 5.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter:   rate.NewLimiter(rate.Limit(10), 5),
		endpoints: DefaultEndpoints(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Geocode returns the best match for name, or nil when nothing matched.
func (c *Client) Geocode(ctx context.Context, name string) (*types.Location, error) {
	u := fmt.Sprintf("%s?name=%s&count=1", c.endpoints.Geocoding, url.QueryEscape(name))

	var data types.OpenMeteoGeocodingResponse
	if err := c.getJSON(ctx, "geocoding", u, &data); err != nil {
		return nil, err
	}

	if len(data.Results) == 0 {
		return nil, nil
	}
	loc := data.Results[0]
	return &loc, nil
}

// Forecast fetches the daily and hourly forecast for a coordinate.
func (c *Client) Forecast(ctx context.Context, lat, long float64) (types.OpenMeteoForecastResponse, error) {
	u := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f"+
			"&daily=temperature_2m_max,temperature_2m_min,uv_index_max,precipitation_sum,wind_speed_10m_max"+
			"&hourly=precipitation_probability,cloud_cover&timezone=auto",
		c.endpoints.Forecast, lat, long,
	)

	var data types.OpenMeteoForecastResponse
	if err := c.getJSON(ctx, "forecast", u, &data); err != nil {
		return types.OpenMeteoForecastResponse{}, err
	}
	return data, nil
}

// Archive fetches daily max/min temperatures between start and end inclusive.
func (c *Client) Archive(ctx context.Context, lat, long float64, start, end time.Time) (types.OpenMeteoArchiveResponse, error) {
	u := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&start_date=%s&end_date=%s"+
			"&daily=temperature_2m_max,temperature_2m_min&timezone=auto",
		c.endpoints.Archive, lat, long, start.Format(time.DateOnly), end.Format(time.DateOnly),
	)

	var data types.OpenMeteoArchiveResponse
	if err := c.getJSON(ctx, "archive", u, &data); err != nil {
		return types.OpenMeteoArchiveResponse{}, err
	}
	return data, nil
}

// AirQuality fetches the hourly PM2.5 and PM10 forecast.
func (c *Client) AirQuality(ctx context.Context, lat, long float64) (types.OpenMeteoAirQualityResponse, error) {
	u := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&hourly=pm2_5,pm10&timezone=auto",
		c.endpoints.AirQuality, lat, long,
	)

	var data types.OpenMeteoAirQualityResponse
	if err := c.getJSON(ctx, "air quality", u, &data); err != nil {
		return types.OpenMeteoAirQualityResponse{}, err
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, u string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limit wait canceled: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", endpoint, err)
	}
	return nil
}
