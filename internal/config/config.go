package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// UserAgent maps to USER_AGENT. Listing sites tend to reject
	// obvious bot agents, so the default mimics a desktop browser.
	UserAgent string `envconfig:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`

	// FetchTimeout maps to FETCH_TIMEOUT.
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`

	// RateLimit maps to RATE_LIMIT: minimum spacing between requests
	// to the same host (robots.txt plus the page itself).
	RateLimit time.Duration `envconfig:"RATE_LIMIT" default:"500ms"`

	// RespectRobots maps to RESPECT_ROBOTS. When set, a robots.txt
	// disallow aborts the run instead of fetching anyway.
	RespectRobots bool `envconfig:"RESPECT_ROBOTS" default:"true"`

	// PageLoadDelay maps to PAGE_LOAD_DELAY. Only matters in rendered
	// mode: how long to let scripts settle after body-ready.
	PageLoadDelay time.Duration `envconfig:"PAGE_LOAD_DELAY" default:"2s"`
}

// Load processes environment variables and populates the Config struct.
func Load() (*Config, error) {
	// Try to load .env first (if it exists). In production the vars
	// are injected directly, so a missing file is not an error.
	if err := godotenv.Load(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			log.Printf("Warning: .env file found but could not be loaded: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
