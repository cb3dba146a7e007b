// Package session sequences user keystrokes and city confirmations against the
// resolvers and owns the presentation state they update.
//
// Correctness rests on monotonic request tokens, not timing: every issued
// lookup is stamped with the next token for its slot (suggestions or weather),
// and a response is applied only while its token is still the latest. A
// response that lost the race is computed and then silently dropped — there is
// no hard cancellation of in-flight lookups, only logical supersession.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"skymood/internal/domain"
	"skymood/internal/observability"
)

// State is the coordinator's position in its input/lookup cycle.
type State string

const (
	StateIdle               State = "idle"
	StateSuggestingInFlight State = "suggesting_in_flight"
	StateWeatherInFlight    State = "weather_in_flight"
	StateSettled            State = "settled"
)

// SuggestionSource resolves raw input to an ordered candidate list.
type SuggestionSource interface {
	Resolve(ctx context.Context, query string) ([]domain.Suggestion, error)
}

// WeatherSource resolves a confirmed city to a classified snapshot.
type WeatherSource interface {
	Resolve(ctx context.Context, city string) (domain.WeatherSnapshot, error)
}

// Options configures coordinator behavior.
type Options struct {
	// Debounce is how long input must stay unchanged before a suggestion
	// lookup fires. Zero disables debouncing (one lookup per keystroke).
	Debounce time.Duration

	// MinQueryLength gates confirmations the same way the suggestion resolver
	// gates queries.
	MinQueryLength int

	// Clock drives the debounce timer. Nil means the real clock; tests inject
	// a fake to advance time deterministically.
	Clock clockwork.Clock
}

// Coordinator owns the raw query, both token counters, and the presentation
// snapshot. All mutation happens under one mutex; lookups run on goroutines
// and re-enter the mutex to apply their result.
type Coordinator struct {
	suggestions SuggestionSource
	weather     WeatherSource
	logger      *slog.Logger
	metrics     *observability.Metrics
	clock       clockwork.Clock
	debounce    time.Duration
	minLength   int

	mu            sync.Mutex
	state         State
	rawQuery      string
	suggestionSeq uint64
	weatherSeq    uint64
	pending       clockwork.Timer
	presentation  Presentation
	closed        bool
}

// New creates a Coordinator in the Idle state with the default presentation.
func New(suggestions SuggestionSource, weather WeatherSource, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Coordinator {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	metrics.SessionActive.Set(1)

	return &Coordinator{
		suggestions:  suggestions,
		weather:      weather,
		logger:       logger,
		metrics:      metrics,
		clock:        clock,
		debounce:     opts.Debounce,
		minLength:    opts.MinQueryLength,
		state:        StateIdle,
		presentation: DefaultPresentation(),
	}
}

// Input records a keystroke-level change to the raw query. Successive calls
// within the debounce window collapse into a single suggestion lookup; only
// the response to the most recently issued lookup can ever reach the
// presentation state.
func (c *Coordinator) Input(ctx context.Context, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.rawQuery = text
	c.stopPendingLocked()

	if c.debounce <= 0 {
		c.issueSuggestionsLocked(ctx, text)
		return
	}

	c.pending = c.clock.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// The query may have moved on, or a confirmation may have landed,
		// while the timer was queued.
		if c.closed || c.rawQuery != text {
			return
		}
		c.metrics.DebounceFires.Inc()
		c.issueSuggestionsLocked(ctx, text)
	})
}

// Confirm handles an explicit city selection or direct submission. The
// suggestion list clears immediately (selection dismisses the dropdown) and
// any in-flight suggestion response is invalidated before the weather lookup
// is issued.
func (c *Coordinator) Confirm(ctx context.Context, city string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || len(city) < c.minLength {
		return
	}

	c.rawQuery = city
	c.stopPendingLocked()
	c.suggestionSeq++

	next := c.presentation
	next.Suggestions = nil
	c.presentation = next

	c.weatherSeq++
	token := c.weatherSeq
	c.state = StateWeatherInFlight

	go c.resolveWeather(lookupContext(ctx), token, city)
}

// Snapshot returns the current presentation state by value.
func (c *Coordinator) Snapshot() Presentation {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.presentation
	if p.Suggestions != nil {
		p.Suggestions = append([]domain.Suggestion(nil), p.Suggestions...)
	}
	return p
}

// State reports the coordinator's current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CheckReadiness returns nil while the coordinator accepts input.
func (c *Coordinator) CheckReadiness(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("session is closed")
	}
	return nil
}

// Close stops the debounce timer and invalidates all in-flight lookups. The
// coordinator ignores input afterwards.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.stopPendingLocked()
	c.suggestionSeq++
	c.weatherSeq++
	c.metrics.SessionActive.Set(0)
}

func (c *Coordinator) stopPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Coordinator) issueSuggestionsLocked(ctx context.Context, text string) {
	c.suggestionSeq++
	token := c.suggestionSeq
	c.state = StateSuggestingInFlight
	go c.resolveSuggestions(lookupContext(ctx), token, text)
}

func (c *Coordinator) resolveSuggestions(ctx context.Context, token uint64, text string) {
	suggestions, err := c.suggestions.Resolve(ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.suggestionSeq {
		c.metrics.StaleDiscards.WithLabelValues(observability.LookupSuggestions).Inc()
		c.logger.Debug("discarded stale suggestion response", "query", text)
		return
	}
	if err != nil {
		// Resolver already logged; the list degrades to empty.
		suggestions = nil
	}

	next := c.presentation
	next.Suggestions = suggestions
	c.presentation = next
	c.state = StateSettled
}

func (c *Coordinator) resolveWeather(ctx context.Context, token uint64, city string) {
	snapshot, err := c.weather.Resolve(ctx, city)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.weatherSeq {
		c.metrics.StaleDiscards.WithLabelValues(observability.LookupWeather).Inc()
		c.logger.Debug("discarded stale weather response", "city", city)
		return
	}

	if err != nil {
		// Recover locally: weather falls back to the designated defaults,
		// nothing propagates to the rendering layer as a failure.
		next := DefaultPresentation()
		next.Suggestions = c.presentation.Suggestions
		c.presentation = next
		c.state = StateSettled
		return
	}

	c.presentation = Presentation{
		Suggestions: c.presentation.Suggestions,
		Weather:     &snapshot,
		ThemeKey:    snapshot.ThemeKey,
		MediaKey:    snapshot.MediaKey,
	}
	c.state = StateSettled
}

// lookupContext detaches a lookup from its triggering call. The trigger (an
// HTTP request, a timer callback) returns long before the lookup completes;
// supersession is handled by tokens, not context cancellation.
func lookupContext(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
