package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	HistoryDriverJSON   = "json"
	HistoryDriverSQLite = "sqlite"
)

type Config struct {
	HTTPAddr          string        `envconfig:"HTTP_ADDR" default:":8080"`
	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"15s"`

	OpenWeatherAPIKey  string `envconfig:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string `envconfig:"OPENWEATHER_BASE_URL" default:"http://api.openweathermap.org/data/2.5"`

	SpotifyClientID     string `envconfig:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string `envconfig:"SPOTIFY_CLIENT_SECRET"`
	SpotifyAPIURL       string `envconfig:"SPOTIFY_API_URL" default:"https://api.spotify.com/v1"`
	SpotifyTokenURL     string `envconfig:"SPOTIFY_TOKEN_URL" default:"https://accounts.spotify.com/api/token"`

	HistoryDriver string `envconfig:"HISTORY_DRIVER" default:"json"`
	HistoryPath   string `envconfig:"HISTORY_PATH" default:"user_history.json"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"moodtunes.db"`

	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile       string `envconfig:"LOG_FILE"`
	LogMaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"50"`
	LogMaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
	LogMaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
	LogCompress   bool   `envconfig:"LOG_COMPRESS" default:"false"`
}

// HasSpotifyCredentials reports whether both client id and secret are set.
func (c Config) HasSpotifyCredentials() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}

// Validate rejects values the service cannot start with.
func (c Config) Validate() error {
	switch c.HistoryDriver {
	case HistoryDriverJSON, HistoryDriverSQLite:
	default:
		return fmt.Errorf("config: unknown history driver %q", c.HistoryDriver)
	}
	if c.HTTPClientTimeout < 0 {
		return errors.New("config: HTTP_CLIENT_TIMEOUT must not be negative")
	}
	return nil
}

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv populates a Config from the environment only.
func FromEnv() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
