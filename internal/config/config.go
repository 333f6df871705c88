package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	ErrMissingYouTubeKey    = errors.New("YouTube API key is required")
	ErrMissingSerpKey       = errors.New("SerpAPI key is required")
	ErrMissingSpreadsheetID = errors.New("spreadsheet ID is required")
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey         string
	SerpAPIKey            string
	SpreadsheetID         string
	GoogleCredentialsFile string
	DatabaseURL           string // optional; run history is disabled when empty

	HTTPTimeout      time.Duration
	SerpRetries      int
	SerpRetryBackoff time.Duration
	SerpRateLimit    float64 // requests per second
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		YouTubeAPIKey:         os.Getenv("YOUTUBE_API_KEY"),
		SerpAPIKey:            os.Getenv("SERP_API_KEY"),
		SpreadsheetID:         os.Getenv("SPREADSHEET_ID"),
		GoogleCredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		DatabaseURL:           os.Getenv("DB_URL"),
		HTTPTimeout:           15 * time.Second,
		SerpRetries:           2,
		SerpRetryBackoff:      500 * time.Millisecond,
		SerpRateLimit:         1,
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}

	if v := os.Getenv("SERP_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid SERP_RETRIES %q", v)
		}
		cfg.SerpRetries = n
	}

	if v := os.Getenv("SERP_RETRY_BACKOFF"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERP_RETRY_BACKOFF %q: %w", v, err)
		}
		cfg.SerpRetryBackoff = d
	}

	if v := os.Getenv("SERP_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid SERP_RATE_LIMIT %q", v)
		}
		cfg.SerpRateLimit = f
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingYouTubeKey)
	}
	if c.SerpAPIKey == "" {
		return fmt.Errorf("%w: SERP_API_KEY environment variable is not set", ErrMissingSerpKey)
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("%w: SPREADSHEET_ID environment variable is not set", ErrMissingSpreadsheetID)
	}
	return nil
}
