package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_KnownDescriptions(t *testing.T) {
	tests := []struct {
		key   string
		theme string
		media string
	}{
		{"clear sky", ThemeClear, MediaClearSky},
		{"few clouds", ThemeCloudy, MediaClouds},
		{"broken clouds", ThemeCloudy, MediaClouds},
		{"overcast clouds", ThemeCloudy, MediaClouds},
		{"light rain", ThemeRainy, MediaRain},
		{"shower rain", ThemeRainy, MediaRain},
		{"thunderstorm", ThemeRainy, MediaThunderstorm},
		{"heavy thunderstorm", ThemeRainy, MediaThunderstorm},
		{"light snow", ThemeSnowy, MediaSnow},
		{"sleet", ThemeSnowy, MediaSnow},
		{"mist", ThemeMisty, MediaMist},
		{"fog", ThemeMisty, MediaMist},
		{"haze", ThemeMisty, MediaMist},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			theme, media := Classify(tc.key)
			assert.Equal(t, tc.theme, theme)
			assert.Equal(t, tc.media, media)
		})
	}
}

func TestClassify_UnknownKeyFallsBackToDefaults(t *testing.T) {
	for _, key := range []string{"", "volcanic ash", "LIGHT RAIN", "light rain ", "????"} {
		theme, media := Classify(key)
		assert.Equal(t, DefaultTheme, theme, "key %q", key)
		assert.Equal(t, DefaultMedia, media, "key %q", key)
	}
}

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, "light rain", NormalizeDescription("  Light Rain "))
	assert.Equal(t, "clear sky", NormalizeDescription("CLEAR SKY"))
	assert.Equal(t, "", NormalizeDescription("   "))
}

func TestNormalizeDescription_FeedsClassify(t *testing.T) {
	theme, media := Classify(NormalizeDescription(" Thunderstorm "))
	assert.Equal(t, ThemeRainy, theme)
	assert.Equal(t, MediaThunderstorm, media)
}

func TestTemperatureBand_Boundaries(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		celsius float64
		want    TemperatureBand
	}{
		{35, TempHot},
		{30.1, TempHot},
		{30.0, TempWarm}, // strict comparison: the boundary ties low
		{22.4, TempWarm},
		{20.0, TempCool},
		{10.1, TempCool},
		{10.0, TempCold},
		{0, TempCold},
		{-12, TempCold},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, th.TemperatureBand(tc.celsius), "%.1f °C", tc.celsius)
	}
}

func TestHumidityBand_Boundaries(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, SeverityLow, th.HumidityBand(0))
	assert.Equal(t, SeverityLow, th.HumidityBand(39.9))
	assert.Equal(t, SeverityModerate, th.HumidityBand(40))
	assert.Equal(t, SeverityModerate, th.HumidityBand(65))
	assert.Equal(t, SeverityModerate, th.HumidityBand(69.9))
	assert.Equal(t, SeverityHigh, th.HumidityBand(70))
	assert.Equal(t, SeverityHigh, th.HumidityBand(100))
}

func TestWindBand_Boundaries(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, SeverityLow, th.WindBand(0))
	assert.Equal(t, SeverityLow, th.WindBand(2.9))
	assert.Equal(t, SeverityModerate, th.WindBand(3))
	assert.Equal(t, SeverityModerate, th.WindBand(5))
	assert.Equal(t, SeverityModerate, th.WindBand(7.9))
	assert.Equal(t, SeverityHigh, th.WindBand(8))
	assert.Equal(t, SeverityHigh, th.WindBand(25))
}

func TestThresholds_Tunable(t *testing.T) {
	th := Thresholds{TempHot: 25, TempWarm: 15, TempCool: 5, HumidityLow: 30, HumidityModerate: 60, WindLow: 2, WindModerate: 6}

	assert.Equal(t, TempHot, th.TemperatureBand(26))
	assert.Equal(t, SeverityHigh, th.HumidityBand(60))
	assert.Equal(t, SeverityModerate, th.WindBand(2))
}

func TestWeatherError_Message(t *testing.T) {
	err := &WeatherError{Kind: ErrKindNotFound, City: "Zzzzz"}
	assert.Contains(t, err.Error(), "Zzzzz")
	assert.Contains(t, err.Error(), "not_found")
}
