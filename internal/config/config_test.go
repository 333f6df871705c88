package config

import (
	"errors"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("SERP_API_KEY", "serp-key")
	t.Setenv("SPREADSHEET_ID", "sheet-id")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.SerpRetries != 2 {
		t.Errorf("SerpRetries = %d", cfg.SerpRetries)
	}
	if cfg.SerpRateLimit != 1 {
		t.Errorf("SerpRateLimit = %v", cfg.SerpRateLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("SERP_RETRIES", "5")
	t.Setenv("SERP_RETRY_BACKOFF", "100ms")
	t.Setenv("SERP_RATE_LIMIT", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.SerpRetries != 5 {
		t.Errorf("SerpRetries = %d", cfg.SerpRetries)
	}
	if cfg.SerpRetryBackoff != 100*time.Millisecond {
		t.Errorf("SerpRetryBackoff = %v", cfg.SerpRetryBackoff)
	}
	if cfg.SerpRateLimit != 0.5 {
		t.Errorf("SerpRateLimit = %v", cfg.SerpRateLimit)
	}
}

func TestLoadMissingKeys(t *testing.T) {
	tests := []struct {
		name  string
		unset string
		want  error
	}{
		{"youtube key", "YOUTUBE_API_KEY", ErrMissingYouTubeKey},
		{"serp key", "SERP_API_KEY", ErrMissingSerpKey},
		{"spreadsheet id", "SPREADSHEET_ID", ErrMissingSpreadsheetID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid HTTP_TIMEOUT")
	}
}
