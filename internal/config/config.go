package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

var (
	ErrMissingDictionaryURL = errors.New("dictionary base URL is required")
	ErrMissingWikipediaURL  = errors.New("wikipedia base URL is required")
	ErrInvalidTimeout       = errors.New("timeouts must be positive")
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// upstream sources
	DictionaryBaseURL string        `env:"DICTIONARY_BASE_URL" envDefault:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	WikipediaBaseURL  string        `env:"WIKIPEDIA_BASE_URL" envDefault:"https://en.wikipedia.org/api/rest_v1/page/summary"`
	UserAgent         string        `env:"USER_AGENT" envDefault:"wordglance/0.1 (dictionary lookup tool)"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	SourceTimeout     time.Duration `env:"SOURCE_TIMEOUT" envDefault:"15s"`

	// serve surface
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// bot mode has no lookup API, only this scrape endpoint
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`

	// bot surface; the token is checked when the bot starts, the CLI and
	// server run without it
	TelegramToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramDebug bool   `env:"TELEGRAM_DEBUG" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DictionaryBaseURL == "" {
		return ErrMissingDictionaryURL
	}
	if c.WikipediaBaseURL == "" {
		return ErrMissingWikipediaURL
	}
	if c.HTTPTimeout <= 0 || c.SourceTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
