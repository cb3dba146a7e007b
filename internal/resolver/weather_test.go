package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skymood/internal/domain"
)

// --- mock weather provider ---

type mockWeatherProvider struct {
	obs    domain.Observation
	err    error
	calls  int
	cities []string
}

func (m *mockWeatherProvider) CurrentWeather(_ context.Context, city string) (domain.Observation, error) {
	m.calls++
	m.cities = append(m.cities, city)
	return m.obs, m.err
}

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func testThresholds() domain.Thresholds { return domain.DefaultThresholds() }

// --- tests ---

func TestWeatherResolver_FullPayload(t *testing.T) {
	provider := &mockWeatherProvider{
		obs: domain.Observation{
			CityName:     "Paris",
			Country:      "FR",
			Description:  strPtr("light rain"),
			Icon:         strPtr("10d"),
			TemperatureC: f64Ptr(22.4),
			HumidityPct:  f64Ptr(65),
			WindSpeedMs:  f64Ptr(5),
		},
	}
	r := NewWeatherResolver(provider, discardLogger(), testThresholds())

	snap, err := r.Resolve(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Paris, FR", snap.CityLabel)
	assert.Equal(t, 22.4, snap.TemperatureC)
	assert.Equal(t, "light rain", snap.DescriptionKey)
	assert.Equal(t, float64(65), snap.HumidityPct)
	assert.Equal(t, float64(5), snap.WindSpeedMs)
	assert.Equal(t, "10d", snap.IconRef)
	assert.Equal(t, domain.TempWarm, snap.TemperatureBand)
	assert.Equal(t, domain.SeverityModerate, snap.HumidityBand)
	assert.Equal(t, domain.SeverityModerate, snap.WindBand)
	assert.Equal(t, domain.ThemeRainy, snap.ThemeKey)
	assert.Equal(t, domain.MediaRain, snap.MediaKey)
}

func TestWeatherResolver_DescriptionNormalizedBeforeClassify(t *testing.T) {
	provider := &mockWeatherProvider{
		obs: domain.Observation{
			CityName:    "Oslo",
			Country:     "NO",
			Description: strPtr("  Light Snow "),
		},
	}
	r := NewWeatherResolver(provider, discardLogger(), testThresholds())

	snap, err := r.Resolve(context.Background(), "Oslo")
	require.NoError(t, err)

	assert.Equal(t, "light snow", snap.DescriptionKey)
	assert.Equal(t, domain.ThemeSnowy, snap.ThemeKey)
	assert.Equal(t, domain.MediaSnow, snap.MediaKey)
}

func TestWeatherResolver_MissingWindStillProducesCompleteSnapshot(t *testing.T) {
	provider := &mockWeatherProvider{
		obs: domain.Observation{
			CityName:     "Lima",
			Country:      "PE",
			Description:  strPtr("few clouds"),
			TemperatureC: f64Ptr(19),
			HumidityPct:  f64Ptr(80),
			// WindSpeedMs omitted by the provider.
		},
	}
	r := NewWeatherResolver(provider, discardLogger(), testThresholds())

	snap, err := r.Resolve(context.Background(), "Lima")
	require.NoError(t, err)

	assert.Equal(t, float64(0), snap.WindSpeedMs)
	assert.Equal(t, domain.SeverityLow, snap.WindBand)
	assert.Equal(t, domain.SeverityHigh, snap.HumidityBand)
	assert.Equal(t, domain.TempCool, snap.TemperatureBand)
}

func TestWeatherResolver_EmptyPayloadResolvesToDefaults(t *testing.T) {
	provider := &mockWeatherProvider{obs: domain.Observation{}}
	r := NewWeatherResolver(provider, discardLogger(), testThresholds())

	snap, err := r.Resolve(context.Background(), "Quito")
	require.NoError(t, err)

	assert.Equal(t, "Quito, Unknown", snap.CityLabel)
	assert.Equal(t, domain.DefaultDescription, snap.DescriptionKey)
	assert.Equal(t, domain.DefaultIcon, snap.IconRef)
	assert.Equal(t, float64(0), snap.TemperatureC)
	assert.Equal(t, domain.TempCold, snap.TemperatureBand)
	assert.Equal(t, domain.SeverityLow, snap.HumidityBand)
	assert.Equal(t, domain.SeverityLow, snap.WindBand)
	assert.Equal(t, domain.DefaultTheme, snap.ThemeKey)
	assert.Equal(t, domain.DefaultMedia, snap.MediaKey)
}

func TestWeatherResolver_NotFoundPassesThrough(t *testing.T) {
	provider := &mockWeatherProvider{
		err: &domain.WeatherError{Kind: domain.ErrKindNotFound, City: "Zzzzz"},
	}
	r := NewWeatherResolver(provider, discardLogger(), testThresholds())

	_, err := r.Resolve(context.Background(), "Zzzzz")
	require.Error(t, err)

	var werr *domain.WeatherError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, domain.ErrKindNotFound, werr.Kind)
}

func TestWeatherResolver_TransportErrorWrapped(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	provider := &mockWeatherProvider{err: cause}
	r := NewWeatherResolver(provider, discardLogger(), testThresholds())

	_, err := r.Resolve(context.Background(), "Paris")
	require.Error(t, err)

	var werr *domain.WeatherError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, domain.ErrKindTransportFailure, werr.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestWeatherResolver_EmptyCityRejectedWithoutLookup(t *testing.T) {
	provider := &mockWeatherProvider{}
	r := NewWeatherResolver(provider, discardLogger(), testThresholds())

	_, err := r.Resolve(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 0, provider.calls)
}
