package domain

import "strings"

// Theme keys grouping provider descriptions into presentation moods.
const (
	ThemeClear  = "clear"
	ThemeCloudy = "cloudy"
	ThemeRainy  = "rainy"
	ThemeSnowy  = "snowy"
	ThemeMisty  = "misty"
)

// Media keys naming the background asset for a condition. The rendering layer
// owns the mapping from key to file; a key change forces a remount there.
const (
	MediaClearSky     = "clear-sky"
	MediaClouds       = "clouds"
	MediaRain         = "rain"
	MediaThunderstorm = "thunderstorm"
	MediaSnow         = "snow"
	MediaMist         = "mist"
)

// Defaults applied when a descriptor key is unknown or a payload field is absent.
const (
	DefaultDescription = "clear sky"
	DefaultTheme       = ThemeClear
	DefaultMedia       = MediaClearSky
	DefaultIcon        = "01d"
)

// classification is the closed enumeration of known provider descriptions.
// Keys are normalized descriptor keys (lower-cased, trimmed).
var classification = map[string]struct {
	theme string
	media string
}{
	"clear sky":          {ThemeClear, MediaClearSky},
	"few clouds":         {ThemeCloudy, MediaClouds},
	"scattered clouds":   {ThemeCloudy, MediaClouds},
	"broken clouds":      {ThemeCloudy, MediaClouds},
	"overcast clouds":    {ThemeCloudy, MediaClouds},
	"light rain":         {ThemeRainy, MediaRain},
	"moderate rain":      {ThemeRainy, MediaRain},
	"heavy rain":         {ThemeRainy, MediaRain},
	"shower rain":        {ThemeRainy, MediaRain},
	"rain":               {ThemeRainy, MediaRain},
	"thunderstorm":       {ThemeRainy, MediaThunderstorm},
	"light thunderstorm": {ThemeRainy, MediaThunderstorm},
	"heavy thunderstorm": {ThemeRainy, MediaThunderstorm},
	"snow":               {ThemeSnowy, MediaSnow},
	"light snow":         {ThemeSnowy, MediaSnow},
	"heavy snow":         {ThemeSnowy, MediaSnow},
	"sleet":              {ThemeSnowy, MediaSnow},
	"mist":               {ThemeMisty, MediaMist},
	"fog":                {ThemeMisty, MediaMist},
	"haze":               {ThemeMisty, MediaMist},
}

// NormalizeDescription reduces free provider text to a descriptor key.
func NormalizeDescription(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

// Classify maps a descriptor key to its theme and media keys. Total over all
// strings: unknown keys yield the clear-sky defaults. Callers normalize the
// key first via NormalizeDescription.
func Classify(descriptionKey string) (themeKey, mediaKey string) {
	if entry, ok := classification[descriptionKey]; ok {
		return entry.theme, entry.media
	}
	return DefaultTheme, DefaultMedia
}

// Thresholds holds the band cut points. All comparisons are strict, so values
// sitting exactly on a cut point tie toward the branch the strict comparison
// falls through to (30 °C is warm, 40 % humidity is moderate, 8 m/s wind is high).
type Thresholds struct {
	TempHot  float64 // °C, above this is hot
	TempWarm float64 // °C, above this is warm
	TempCool float64 // °C, above this is cool, at or below is cold

	HumidityLow      float64 // %, below this is low
	HumidityModerate float64 // %, below this is moderate, at or above is high

	WindLow      float64 // m/s, below this is low
	WindModerate float64 // m/s, below this is moderate, at or above is high
}

// DefaultThresholds returns the operational cut points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TempHot:          30,
		TempWarm:         20,
		TempCool:         10,
		HumidityLow:      40,
		HumidityModerate: 70,
		WindLow:          3,
		WindModerate:     8,
	}
}

// TemperatureBand classifies a temperature in degrees Celsius.
func (t Thresholds) TemperatureBand(celsius float64) TemperatureBand {
	switch {
	case celsius > t.TempHot:
		return TempHot
	case celsius > t.TempWarm:
		return TempWarm
	case celsius > t.TempCool:
		return TempCool
	default:
		return TempCold
	}
}

// HumidityBand classifies a relative humidity percentage.
func (t Thresholds) HumidityBand(pct float64) SeverityBand {
	switch {
	case pct < t.HumidityLow:
		return SeverityLow
	case pct < t.HumidityModerate:
		return SeverityModerate
	default:
		return SeverityHigh
	}
}

// WindBand classifies a wind speed in meters per second.
func (t Thresholds) WindBand(ms float64) SeverityBand {
	switch {
	case ms < t.WindLow:
		return SeverityLow
	case ms < t.WindModerate:
		return SeverityModerate
	default:
		return SeverityHigh
	}
}
