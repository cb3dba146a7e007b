package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"skymood/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// OpenWeatherMap provider configuration.
	OpenWeatherAPIKey   string
	OpenWeatherTimeout  time.Duration
	SuggestionCacheSize int

	// Query engine tuning.
	MinQueryLength  int
	Debounce        time.Duration
	SuggestionLimit int

	// Classification band cut points.
	Thresholds domain.Thresholds
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	providerTimeout, err := parseDuration("OPENWEATHER_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	debounce, err := parseDuration("DEBOUNCE", 250*time.Millisecond)
	if err != nil {
		return nil, err
	}

	cacheSize, err := parsePositiveInt("SUGGESTION_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	minQueryLength, err := parsePositiveInt("MIN_QUERY_LENGTH", 3)
	if err != nil {
		return nil, err
	}

	suggestionLimit, err := parsePositiveInt("SUGGESTION_LIMIT", 5)
	if err != nil {
		return nil, err
	}

	thresholds, err := loadThresholds()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		OpenWeatherAPIKey:   os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherTimeout:  providerTimeout,
		SuggestionCacheSize: cacheSize,

		MinQueryLength:  minQueryLength,
		Debounce:        debounce,
		SuggestionLimit: suggestionLimit,

		Thresholds: thresholds,
	}

	if cfg.OpenWeatherAPIKey == "" {
		return nil, errors.New("OPENWEATHER_API_KEY is required")
	}

	return cfg, nil
}

func loadThresholds() (domain.Thresholds, error) {
	t := domain.DefaultThresholds()

	fields := []struct {
		env string
		dst *float64
	}{
		{"TEMP_HOT", &t.TempHot},
		{"TEMP_WARM", &t.TempWarm},
		{"TEMP_COOL", &t.TempCool},
		{"HUMIDITY_LOW", &t.HumidityLow},
		{"HUMIDITY_MODERATE", &t.HumidityModerate},
		{"WIND_LOW", &t.WindLow},
		{"WIND_MODERATE", &t.WindModerate},
	}
	for _, f := range fields {
		if s := os.Getenv(f.env); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return domain.Thresholds{}, fmt.Errorf("invalid %s", f.env)
			}
			*f.dst = v
		}
	}

	if t.TempHot <= t.TempWarm || t.TempWarm <= t.TempCool {
		return domain.Thresholds{}, errors.New("temperature thresholds must satisfy TEMP_HOT > TEMP_WARM > TEMP_COOL")
	}
	if t.HumidityLow >= t.HumidityModerate {
		return domain.Thresholds{}, errors.New("humidity thresholds must satisfy HUMIDITY_LOW < HUMIDITY_MODERATE")
	}
	if t.WindLow >= t.WindModerate {
		return domain.Thresholds{}, errors.New("wind thresholds must satisfy WIND_LOW < WIND_MODERATE")
	}

	return t, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}
