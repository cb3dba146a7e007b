package domain

import "fmt"

// Suggestion is one validated geocoding candidate offered to the user.
// Name and Country are always non-empty; records that fail that check are
// dropped before a Suggestion is ever constructed.
type Suggestion struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat,omitempty"`
	Lon     float64 `json:"lon,omitempty"`
}

// TemperatureBand is the coarse temperature category derived from degrees Celsius.
type TemperatureBand string

const (
	TempCold TemperatureBand = "cold"
	TempCool TemperatureBand = "cool"
	TempWarm TemperatureBand = "warm"
	TempHot  TemperatureBand = "hot"
)

// SeverityBand is the coarse low/moderate/high category used for humidity and wind.
type SeverityBand string

const (
	SeverityLow      SeverityBand = "low"
	SeverityModerate SeverityBand = "moderate"
	SeverityHigh     SeverityBand = "high"
)

// WeatherSnapshot is one coherent, fully classified weather result.
// It is immutable once built; a new query produces a wholly new snapshot,
// never a patch of the previous one.
type WeatherSnapshot struct {
	CityLabel      string  `json:"city_label"`
	TemperatureC   float64 `json:"temperature_c"`
	DescriptionKey string  `json:"description_key"`
	HumidityPct    float64 `json:"humidity_pct"`
	WindSpeedMs    float64 `json:"wind_speed_ms"`
	IconRef        string  `json:"icon_ref"`

	TemperatureBand TemperatureBand `json:"temperature_band"`
	HumidityBand    SeverityBand    `json:"humidity_band"`
	WindBand        SeverityBand    `json:"wind_band"`
	ThemeKey        string          `json:"theme_key"`
	MediaKey        string          `json:"media_key"`
}

// WeatherErrorKind distinguishes a provider-reported unknown city from a
// network or decode failure. Both are recoverable; neither produces a snapshot.
type WeatherErrorKind string

const (
	ErrKindNotFound         WeatherErrorKind = "not_found"
	ErrKindTransportFailure WeatherErrorKind = "transport_failure"
)

// WeatherError is the failure result of a weather lookup.
type WeatherError struct {
	Kind WeatherErrorKind
	City string
	Err  error
}

func (e *WeatherError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("weather lookup for %q: %s: %v", e.City, e.Kind, e.Err)
	}
	return fmt.Sprintf("weather lookup for %q: %s", e.City, e.Kind)
}

func (e *WeatherError) Unwrap() error { return e.Err }
