package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ytget/spotify-streamer/internal/catalog"
)

// Env holds process configuration loaded from environment variables
type Env struct {
	// Catalog endpoints; point both at the mock catalog for offline use
	CatalogBaseURL  string `env:"CATALOG_BASE_URL"  envDefault:"https://api.spotify.com/v1"`
	CatalogTokenURL string `env:"CATALOG_TOKEN_URL" envDefault:"https://accounts.spotify.com/api/token"`

	// App credentials for the client-credentials grant
	ClientID     string `env:"SPOTIFY_CLIENT_ID"`
	ClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`

	Timeout     time.Duration `env:"CATALOG_TIMEOUT"      envDefault:"15s"`
	RateLimit   float64       `env:"CATALOG_RATE_LIMIT"   envDefault:"5"`
	RateBurst   int           `env:"CATALOG_RATE_BURST"   envDefault:"2"`
	SearchLimit int           `env:"CATALOG_SEARCH_LIMIT" envDefault:"20"`

	// ImageCacheSize caps the number of decoded images kept in memory
	ImageCacheSize int `env:"IMAGE_CACHE_SIZE" envDefault:"128"`
}

// LoadEnv parses environment variables into an Env
func LoadEnv() (*Env, error) {
	cfg := &Env{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func (c *Env) validate() error {
	if c.ClientID != "" && c.ClientSecret == "" {
		return errors.New("SPOTIFY_CLIENT_SECRET is required when SPOTIFY_CLIENT_ID is set")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT must be positive, got %s", c.Timeout)
	}
	if c.SearchLimit < 1 || c.SearchLimit > catalog.MaxSearchLimit {
		return fmt.Errorf("CATALOG_SEARCH_LIMIT must be between 1 and %d, got %d", catalog.MaxSearchLimit, c.SearchLimit)
	}
	if c.ImageCacheSize < 0 {
		return fmt.Errorf("IMAGE_CACHE_SIZE must not be negative, got %d", c.ImageCacheSize)
	}
	return nil
}

// CatalogOptions maps the environment onto catalog client options
func (c *Env) CatalogOptions() catalog.Options {
	return catalog.Options{
		BaseURL:      c.CatalogBaseURL,
		TokenURL:     c.CatalogTokenURL,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Timeout:      c.Timeout,
		RateLimit:    c.RateLimit,
		RateBurst:    c.RateBurst,
		SearchLimit:  c.SearchLimit,
	}
}
