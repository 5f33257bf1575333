package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/oswinp/curiodb/internal/domain"
)

// Load loads configuration from multiple sources:
// 1. Config file (config.yaml, optional)
// 2. Environment variables (CURIODB_*)
func Load() (*domain.Config, error) {
	cfg := &domain.Config{
		ListenAddr:        viper.GetString("listen_addr"),
		DataDir:           viper.GetString("data_dir"),
		TmdbApiToken:      viper.GetString("tmdb_api_token"),
		TmdbBaseURL:       viper.GetString("tmdb_base_url"),
		TmdbImageBaseURL:  viper.GetString("tmdb_image_base_url"),
		ImportDelay:       viper.GetDuration("import_delay"),
		DiscordWebhookURL: viper.GetString("discord_webhook_url"),
		LogLevel:          viper.GetString("log_level"),
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8585"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	if cfg.TmdbBaseURL == "" {
		cfg.TmdbBaseURL = "https://api.themoviedb.org/3"
	}
	if cfg.TmdbImageBaseURL == "" {
		cfg.TmdbImageBaseURL = "https://image.tmdb.org/t/p/original"
	}
	if !viper.IsSet("import_delay") {
		cfg.ImportDelay = 250 * time.Millisecond
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.TmdbApiToken == "" {
		return nil, fmt.Errorf("tmdb_api_token is required (set via config.yaml or CURIODB_TMDB_API_TOKEN environment variable)")
	}

	return cfg, nil
}
