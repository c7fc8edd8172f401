package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/coachtree/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "coachtree",
			Version:     "1.0.0",
			Environment: "development",
		},
		Crawler: config.CrawlerConfig{
			APIBaseURL:     "https://en.wikipedia.org/w/api.php",
			UserAgent:      "CoachTreeBot/test",
			Delay:          time.Second,
			RequestTimeout: 30 * time.Second,
			MaxPages:       300,
			MaxDepth:       5,
			PresentYear:    2024,
			SeedsPage:      "List of current National Football League head coaches",
		},
		Dataset: config.DatasetConfig{
			Path: "data/coaching_connections.json",
		},
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "valid configuration",
			mutate: func(*config.Config) {},
		},
		{
			name:    "missing app name",
			mutate:  func(c *config.Config) { c.App.Name = "" },
			wantErr: "application name",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *config.Config) { c.App.Environment = "testing" },
			wantErr: "invalid environment",
		},
		{
			name:    "missing api base url",
			mutate:  func(c *config.Config) { c.Crawler.APIBaseURL = "" },
			wantErr: "api_base_url",
		},
		{
			name:    "missing user agent",
			mutate:  func(c *config.Config) { c.Crawler.UserAgent = "" },
			wantErr: "user_agent",
		},
		{
			name:    "non-positive page budget",
			mutate:  func(c *config.Config) { c.Crawler.MaxPages = 0 },
			wantErr: "max_pages",
		},
		{
			name:    "negative depth",
			mutate:  func(c *config.Config) { c.Crawler.MaxDepth = -1 },
			wantErr: "max_depth",
		},
		{
			name:    "negative delay",
			mutate:  func(c *config.Config) { c.Crawler.Delay = -time.Second },
			wantErr: "delay",
		},
		{
			name:    "implausible present year",
			mutate:  func(c *config.Config) { c.Crawler.PresentYear = 1850 },
			wantErr: "present_year",
		},
		{
			name:    "missing dataset path",
			mutate:  func(c *config.Config) { c.Dataset.Path = "" },
			wantErr: "dataset path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestLoad exercises the viper decode path, including duration parsing.
// It mutates global viper state and must not run in parallel.
func TestLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("app.name", "coachtree")
	viper.Set("app.environment", "development")
	viper.Set("app.debug", true)
	viper.Set("logger.level", "debug")
	viper.Set("logger.output_paths", "stdout,stderr")
	viper.Set("crawler.api_base_url", "https://en.wikipedia.org/w/api.php")
	viper.Set("crawler.user_agent", "CoachTreeBot/test")
	viper.Set("crawler.delay", "2s")
	viper.Set("crawler.request_timeout", "45s")
	viper.Set("crawler.max_pages", 50)
	viper.Set("crawler.max_depth", 3)
	viper.Set("crawler.present_year", 2024)
	viper.Set("crawler.seeds_page", "List of current National Football League head coaches")
	viper.Set("dataset.path", "data/test.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, []string{"stdout", "stderr"}, cfg.Logger.OutputPaths)
	assert.Equal(t, 2*time.Second, cfg.Crawler.Delay)
	assert.Equal(t, 45*time.Second, cfg.Crawler.RequestTimeout)
	assert.Equal(t, 50, cfg.Crawler.MaxPages)
	assert.Equal(t, 3, cfg.Crawler.MaxDepth)
	assert.Equal(t, "data/test.json", cfg.Dataset.Path)
}

// TestLoadInvalid verifies that validation failures surface through Load.
func TestLoadInvalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("app.name", "coachtree")
	viper.Set("app.environment", "nowhere")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}
