// Package resolver turns raw user input into validated suggestions and
// classified weather snapshots. Resolvers are pure request/response: they hold
// no session state and know nothing about request ordering — staleness is the
// session coordinator's concern.
package resolver

import (
	"context"
	"log/slog"

	"skymood/internal/domain"
)

// SuggestionResolver validates free-text queries and resolves them to an
// ordered candidate list.
type SuggestionResolver struct {
	provider  domain.GeocodeProvider
	logger    *slog.Logger
	minLength int
	limit     int
}

// NewSuggestionResolver creates a resolver over the given geocoding provider.
func NewSuggestionResolver(provider domain.GeocodeProvider, logger *slog.Logger, minLength, limit int) *SuggestionResolver {
	return &SuggestionResolver{
		provider:  provider,
		logger:    logger,
		minLength: minLength,
		limit:     limit,
	}
}

// Resolve returns suggestions for query, or nil with no lookup issued when the
// query is shorter than the configured minimum. Provider failure degrades to an
// empty list; the error is returned for observability but is never fatal.
func (r *SuggestionResolver) Resolve(ctx context.Context, query string) ([]domain.Suggestion, error) {
	if len(query) < r.minLength {
		return nil, nil
	}

	records, err := r.provider.SearchCities(ctx, query, r.limit)
	if err != nil {
		r.logger.Warn("suggestion lookup failed", "query", query, "error", err)
		return nil, err
	}

	// Provider relevance order is trusted; surviving records keep it.
	suggestions := make([]domain.Suggestion, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" || rec.Country == "" {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{
			Name:    rec.Name,
			Country: rec.Country,
			Lat:     rec.Lat,
			Lon:     rec.Lon,
		})
	}

	return suggestions, nil
}
