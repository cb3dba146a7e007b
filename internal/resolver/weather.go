package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"skymood/internal/domain"
)

// WeatherResolver fetches current conditions for a confirmed city and
// classifies them into a presentation-ready snapshot.
type WeatherResolver struct {
	provider   domain.WeatherProvider
	logger     *slog.Logger
	thresholds domain.Thresholds
}

// NewWeatherResolver creates a resolver over the given weather provider.
func NewWeatherResolver(provider domain.WeatherProvider, logger *slog.Logger, thresholds domain.Thresholds) *WeatherResolver {
	return &WeatherResolver{
		provider:   provider,
		logger:     logger,
		thresholds: thresholds,
	}
}

// Resolve returns a fully populated snapshot for city, or a *domain.WeatherError
// describing why none could be produced. Missing payload fields resolve to the
// documented defaults so a partial upstream payload still yields a complete,
// internally consistent snapshot.
func (r *WeatherResolver) Resolve(ctx context.Context, city string) (domain.WeatherSnapshot, error) {
	if city == "" {
		return domain.WeatherSnapshot{}, &domain.WeatherError{Kind: domain.ErrKindNotFound, City: city, Err: errors.New("empty city name")}
	}

	obs, err := r.provider.CurrentWeather(ctx, city)
	if err != nil {
		var werr *domain.WeatherError
		if !errors.As(err, &werr) {
			werr = &domain.WeatherError{Kind: domain.ErrKindTransportFailure, City: city, Err: err}
		}
		r.logger.Warn("weather lookup failed", "city", city, "kind", werr.Kind, "error", err)
		return domain.WeatherSnapshot{}, werr
	}

	descriptionKey := domain.NormalizeDescription(stringOr(obs.Description, domain.DefaultDescription))
	if descriptionKey == "" {
		descriptionKey = domain.DefaultDescription
	}
	themeKey, mediaKey := domain.Classify(descriptionKey)

	temperature := floatOr(obs.TemperatureC, 0)
	humidity := floatOr(obs.HumidityPct, 0)
	wind := floatOr(obs.WindSpeedMs, 0)

	return domain.WeatherSnapshot{
		CityLabel:      cityLabel(obs.CityName, obs.Country, city),
		TemperatureC:   temperature,
		DescriptionKey: descriptionKey,
		HumidityPct:    humidity,
		WindSpeedMs:    wind,
		IconRef:        stringOr(obs.Icon, domain.DefaultIcon),

		TemperatureBand: r.thresholds.TemperatureBand(temperature),
		HumidityBand:    r.thresholds.HumidityBand(humidity),
		WindBand:        r.thresholds.WindBand(wind),
		ThemeKey:        themeKey,
		MediaKey:        mediaKey,
	}, nil
}

// cityLabel composes the display label "Name, CC", falling back to the queried
// name and an Unknown country marker when the payload omits them.
func cityLabel(name, country, queried string) string {
	if name == "" {
		name = queried
	}
	if country == "" {
		country = "Unknown"
	}
	return fmt.Sprintf("%s, %s", name, country)
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
