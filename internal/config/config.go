package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port                 string
	BotToken             string
	TelegramAPIBase      string
	TakeawayBaseURL      string
	DefaultPostalCode    int
	LanguageCode         string
	CountryCode          string
	ListCacheTTL         time.Duration
	FetchTimeout         time.Duration
	DetailConcurrency    int
	RateLimitRestaurants RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		BotToken:          os.Getenv("BOT_TOKEN"),
		TelegramAPIBase:   getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
		TakeawayBaseURL:   getEnv("TAKEAWAY_BASE_URL", "https://cw-api.takeaway.com"),
		LanguageCode:      getEnv("LANGUAGE_CODE", "de"),
		CountryCode:       getEnv("COUNTRY_CODE", "de"),
		ListCacheTTL:      parseDuration(getEnv("LIST_CACHE_TTL", "30m"), 30*time.Minute),
		FetchTimeout:      parseDuration(getEnv("FETCH_TIMEOUT", "15s"), 15*time.Second),
		DetailConcurrency: parseInt(getEnv("DETAIL_CONCURRENCY", "8"), 8),
	}

	postalCode, err := strconv.Atoi(getEnv("DEFAULT_POSTAL_CODE", "64293"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_POSTAL_CODE value: %w", err)
	}
	cfg.DefaultPostalCode = postalCode

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_RESTAURANTS", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RESTAURANTS value: %w", err)
	}
	cfg.RateLimitRestaurants = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(input string, fallback int) int {
	n, err := strconv.Atoi(input)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
