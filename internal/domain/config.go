package domain

import "time"

type Config struct {
	ListenAddr        string        `toml:"listen_addr" mapstructure:"listen_addr"`
	DataDir           string        `toml:"data_dir" mapstructure:"data_dir"`
	TmdbApiToken      string        `toml:"tmdb_api_token" mapstructure:"tmdb_api_token"`
	TmdbBaseURL       string        `toml:"tmdb_base_url" mapstructure:"tmdb_base_url"`
	TmdbImageBaseURL  string        `toml:"tmdb_image_base_url" mapstructure:"tmdb_image_base_url"`
	ImportDelay       time.Duration `toml:"import_delay" mapstructure:"import_delay"`
	DiscordWebhookURL string        `toml:"discord_webhook_url" mapstructure:"discord_webhook_url"`
	LogLevel          string        `toml:"log_level" mapstructure:"log_level"`
}
