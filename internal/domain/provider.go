package domain

import "context"

// CityRecord is one raw geocoding candidate as returned by the provider.
// Unlike Suggestion it carries no validity guarantee; resolvers filter out
// records with a missing name or country code.
type CityRecord struct {
	Name    string
	Country string
	Lat     float64
	Lon     float64
}

// Observation is the raw current-conditions payload for one city. Pointer
// fields are nil when the provider omitted them; resolvers substitute the
// documented defaults.
type Observation struct {
	CityName     string
	Country      string
	Description  *string
	Icon         *string
	TemperatureC *float64
	HumidityPct  *float64
	WindSpeedMs  *float64
}

// GeocodeProvider looks up city candidates for a free-text query.
type GeocodeProvider interface {
	// SearchCities returns up to limit candidates ordered by provider relevance.
	// An unknown query yields an empty slice, not an error.
	SearchCities(ctx context.Context, query string, limit int) ([]CityRecord, error)
}

// WeatherProvider looks up current conditions by exact city name.
type WeatherProvider interface {
	// CurrentWeather returns a *WeatherError with Kind ErrKindNotFound when the
	// provider reports an unknown city.
	CurrentWeather(ctx context.Context, city string) (Observation, error)
}
