// Package openweather implements the geocoding and weather providers against
// the OpenWeatherMap API.
package openweather

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"skymood/internal/domain"
	"skymood/internal/observability"
)

// Client implements domain.GeocodeProvider and domain.WeatherProvider using
// the OpenWeatherMap Geocoding and Current Weather APIs.
type Client struct {
	apiKey         string
	httpClient     *http.Client
	geoBaseURL     string
	weatherBaseURL string
	metrics        *observability.Metrics
	logger         *slog.Logger
}

// NewClient creates an OpenWeatherMap client. The timeout bounds each lookup;
// a request past the bound fails as a transport error, never hangs the session.
func NewClient(apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		geoBaseURL:     "https://api.openweathermap.org/geo/1.0",
		weatherBaseURL: "https://api.openweathermap.org/data/2.5",
		metrics:        metrics,
		logger:         logger,
	}
}

// SearchCities queries the geocoding endpoint for up to limit candidates.
func (c *Client) SearchCities(ctx context.Context, query string, limit int) ([]domain.CityRecord, error) {
	params := url.Values{
		"q":     {query},
		"limit": {strconv.Itoa(limit)},
		"appid": {c.apiKey},
	}
	fullURL := c.geoBaseURL + "/direct?" + params.Encode()

	start := time.Now()
	body, err := c.get(ctx, fullURL)
	c.metrics.LookupDuration.WithLabelValues(observability.LookupSuggestions).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.Lookups.WithLabelValues(observability.LookupSuggestions, observability.OutcomeError).Inc()
		return nil, fmt.Errorf("geocode request: %w", err)
	}

	var records []geoRecord
	if err := json.Unmarshal(body, &records); err != nil {
		c.metrics.Lookups.WithLabelValues(observability.LookupSuggestions, observability.OutcomeError).Inc()
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(records) == 0 {
		c.metrics.Lookups.WithLabelValues(observability.LookupSuggestions, observability.OutcomeEmpty).Inc()
		return nil, nil
	}
	c.metrics.Lookups.WithLabelValues(observability.LookupSuggestions, observability.OutcomeSuccess).Inc()

	out := make([]domain.CityRecord, 0, len(records))
	for _, r := range records {
		out = append(out, domain.CityRecord{
			Name:    r.Name,
			Country: r.Country,
			Lat:     r.Lat,
			Lon:     r.Lon,
		})
	}
	return out, nil
}

// CurrentWeather queries the current-conditions endpoint by exact city name.
// Returns a *domain.WeatherError with Kind ErrKindNotFound when the provider
// reports an unknown city.
func (c *Client) CurrentWeather(ctx context.Context, city string) (domain.Observation, error) {
	params := url.Values{
		"q":     {city},
		"units": {"metric"},
		"appid": {c.apiKey},
	}
	fullURL := c.weatherBaseURL + "/weather?" + params.Encode()

	start := time.Now()
	body, err := c.get(ctx, fullURL)
	c.metrics.LookupDuration.WithLabelValues(observability.LookupWeather).Observe(time.Since(start).Seconds())
	if err != nil {
		if notFound, msg := isNotFoundBody(err); notFound {
			c.metrics.Lookups.WithLabelValues(observability.LookupWeather, observability.OutcomeNotFound).Inc()
			return domain.Observation{}, &domain.WeatherError{Kind: domain.ErrKindNotFound, City: city, Err: fmt.Errorf("provider: %s", msg)}
		}
		c.metrics.Lookups.WithLabelValues(observability.LookupWeather, observability.OutcomeError).Inc()
		return domain.Observation{}, fmt.Errorf("weather request: %w", err)
	}

	var resp weatherResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.metrics.Lookups.WithLabelValues(observability.LookupWeather, observability.OutcomeError).Inc()
		return domain.Observation{}, fmt.Errorf("decode weather response: %w", err)
	}

	if cod := parseCod(resp.Cod); cod != http.StatusOK {
		c.metrics.Lookups.WithLabelValues(observability.LookupWeather, observability.OutcomeNotFound).Inc()
		return domain.Observation{}, &domain.WeatherError{Kind: domain.ErrKindNotFound, City: city, Err: fmt.Errorf("provider cod %d: %s", cod, resp.Message)}
	}
	c.metrics.Lookups.WithLabelValues(observability.LookupWeather, observability.OutcomeSuccess).Inc()

	obs := domain.Observation{
		CityName: resp.Name,
		Country:  resp.Sys.Country,
	}
	if len(resp.Weather) > 0 {
		obs.Description = resp.Weather[0].Description
		obs.Icon = resp.Weather[0].Icon
	}
	if resp.Main != nil {
		obs.TemperatureC = resp.Main.Temp
		obs.HumidityPct = resp.Main.Humidity
	}
	if resp.Wind != nil {
		obs.WindSpeedMs = resp.Wind.Speed
	}
	return obs, nil
}

// get performs a GET and returns the body. Non-2xx statuses become a
// *statusError so CurrentWeather can distinguish a provider 404.
func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{status: resp.StatusCode, body: body}
	}
	return body, nil
}

type statusError struct {
	status int
	body   []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("openweathermap API error: status %d: %s", e.status, e.body)
}

// isNotFoundBody reports whether err is a provider 404 and extracts its message.
func isNotFoundBody(err error) (bool, string) {
	se, ok := err.(*statusError)
	if !ok || se.status != http.StatusNotFound {
		return false, ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(se.body, &payload) == nil && payload.Message != "" {
		return true, payload.Message
	}
	return true, "city not found"
}

// parseCod normalizes the provider's "cod" field, which is a JSON number on
// success and a quoted string on errors. Returns 0 when absent or unparseable.
func parseCod(raw json.RawMessage) int {
	s := string(bytes.Trim(bytes.TrimSpace(raw), `"`))
	if s == "" {
		return 0
	}
	cod, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return cod
}

// OpenWeatherMap API response types.

type geoRecord struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type weatherResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
	Name    string          `json:"name"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
	Weather []struct {
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
	} `json:"weather"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}
