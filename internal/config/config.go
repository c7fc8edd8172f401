// Package config provides configuration management for the coaching tree
// scraper. Values come from the config file, environment variables, and
// defaults set in the root command, all through viper.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the root configuration for all commands.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logger  LoggingConfig `mapstructure:"logger"`
	Crawler CrawlerConfig `mapstructure:"crawler"`
	Dataset DatasetConfig `mapstructure:"dataset"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	// Name is the name of the application.
	Name string `mapstructure:"name"`
	// Version is the version of the application.
	Version string `mapstructure:"version"`
	// Environment is the application environment (development, staging, production).
	Environment string `mapstructure:"environment"`
	// Debug indicates whether debug mode is enabled.
	Debug bool `mapstructure:"debug"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level       string   `mapstructure:"level"`
	Development bool     `mapstructure:"development"`
	Encoding    string   `mapstructure:"encoding"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// CrawlerConfig holds settings for the Wikipedia crawl.
type CrawlerConfig struct {
	// APIBaseURL is the MediaWiki API endpoint.
	APIBaseURL string `mapstructure:"api_base_url"`
	// UserAgent identifies the bot to the remote service.
	UserAgent string `mapstructure:"user_agent"`
	// Delay is the pause between consecutive fetches.
	Delay time.Duration `mapstructure:"delay"`
	// RequestTimeout bounds each individual fetch.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// MaxPages caps the number of successfully processed pages per run.
	MaxPages int `mapstructure:"max_pages"`
	// MaxDepth caps the BFS distance from any seed coach.
	MaxDepth int `mapstructure:"max_depth"`
	// PresentYear is the year substituted for "present" in career ranges.
	PresentYear int `mapstructure:"present_year"`
	// SeedsPage is the article listing current head coaches.
	SeedsPage string `mapstructure:"seeds_page"`
}

// DatasetConfig holds settings for the persisted dataset file.
type DatasetConfig struct {
	// Path is the location of the JSON dataset.
	Path string `mapstructure:"path"`
}

// Validate checks application settings.
func (c *AppConfig) Validate() error {
	if c.Name == "" {
		return errors.New("application name must be specified")
	}

	switch c.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	return nil
}

// Validate checks crawler settings.
func (c *CrawlerConfig) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("api_base_url must be specified")
	}
	if c.UserAgent == "" {
		return errors.New("user_agent must be specified")
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("max_pages must be positive, got %d", c.MaxPages)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if c.PresentYear < 1900 {
		return fmt.Errorf("present_year %d is not plausible", c.PresentYear)
	}
	return nil
}

// Validate checks dataset settings.
func (c *DatasetConfig) Validate() error {
	if c.Path == "" {
		return errors.New("dataset path must be specified")
	}
	return nil
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Crawler.Validate(); err != nil {
		return fmt.Errorf("crawler: %w", err)
	}
	if err := c.Dataset.Validate(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	return nil
}

// Load decodes the current viper settings into a Config.
// Duration strings such as "1s" are decoded via a mapstructure hook.
func Load() (*Config, error) {
	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}

	if decodeErr := decoder.Decode(viper.AllSettings()); decodeErr != nil {
		return nil, fmt.Errorf("decode config: %w", decodeErr)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}
