package main

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ewilliams-labs/moodtunes/internal/adapters/jsonfile"
	"github.com/ewilliams-labs/moodtunes/internal/adapters/openweather"
	"github.com/ewilliams-labs/moodtunes/internal/adapters/spotify"
	"github.com/ewilliams-labs/moodtunes/internal/adapters/sqlite"
	"github.com/ewilliams-labs/moodtunes/internal/config"
	"github.com/ewilliams-labs/moodtunes/internal/core/ports"
	"github.com/ewilliams-labs/moodtunes/internal/core/services"
	"github.com/ewilliams-labs/moodtunes/internal/logger"
)

type app struct {
	cfg         *config.Config
	log         *zap.Logger
	recommender *services.Recommender
	close       func() error
}

func loadApp(c *cli.Context) (*app, error) {
	cfg, err := config.Load(c.StringSlice("env-file")...)
	if err != nil {
		return nil, err
	}

	zl, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		return nil, err
	}

	store, closeStore, err := openHistory(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}

	weather := openweather.NewClient(cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey, httpClient)

	var searcher ports.PlaylistSearcher
	if cfg.HasSpotifyCredentials() {
		searcher = spotify.NewClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret,
			spotify.WithBaseURL(cfg.SpotifyAPIURL),
			spotify.WithTokenURL(cfg.SpotifyTokenURL),
			spotify.WithHTTPClient(httpClient),
			spotify.WithLogger(zl.Named("spotify")),
		)
	} else {
		zl.Warn("SPOTIFY_CLIENT_ID or SPOTIFY_CLIENT_SECRET not set; playlist search disabled")
	}

	svc := services.NewRecommender(
		weather,
		services.NewPlaylistResolver(searcher, zl.Named("resolver")),
		services.NewSessionLogger(store, zl.Named("history")),
		zl.Named("recommender"),
	)

	return &app{
		cfg:         cfg,
		log:         zl,
		recommender: svc,
		close: func() error {
			_ = zl.Sync()
			return closeStore()
		},
	}, nil
}

func openHistory(cfg *config.Config) (ports.HistoryStore, func() error, error) {
	switch cfg.HistoryDriver {
	case config.HistoryDriverSQLite:
		a, err := sqlite.NewAdapter(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize history database: %w", err)
		}
		return a, a.Close, nil
	default:
		return jsonfile.NewStore(cfg.HistoryPath), func() error { return nil }, nil
	}
}
