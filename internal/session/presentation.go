package session

import "skymood/internal/domain"

// Presentation is the immutable view model consumed by the rendering layer.
// The coordinator replaces it wholesale; readers never observe a partially
// updated value.
type Presentation struct {
	Suggestions []domain.Suggestion     `json:"suggestions"`
	Weather     *domain.WeatherSnapshot `json:"weather,omitempty"`
	ThemeKey    string                  `json:"theme_key"`
	MediaKey    string                  `json:"media_key"`
}

// DefaultPresentation is the designated fallback: no weather, no suggestions,
// clear-sky theme. Used on first load, on unrecoverable lookup failure, and on
// provider-reported not-found.
func DefaultPresentation() Presentation {
	return Presentation{
		Suggestions: []domain.Suggestion{},
		ThemeKey:    domain.DefaultTheme,
		MediaKey:    domain.DefaultMedia,
	}
}
