package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
	"github.com/ewilliams-labs/moodtunes/internal/core/ports"
)

// Recommender runs one session: weather, classification, playlist search and
// history logging.
type Recommender struct {
	weather  ports.WeatherProvider
	resolver *PlaylistResolver
	sessions *SessionLogger
	log      *zap.Logger
}

// NewRecommender constructs a Recommender.
func NewRecommender(weather ports.WeatherProvider, resolver *PlaylistResolver, sessions *SessionLogger, log *zap.Logger) *Recommender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recommender{
		weather:  weather,
		resolver: resolver,
		sessions: sessions,
		log:      log,
	}
}

// Recommend never fails: a weather error degrades to an unknown reading and
// playlist failures are carried in the result status.
func (r *Recommender) Recommend(ctx context.Context, req domain.MoodRequest) domain.Recommendation {
	reading, err := r.weather.Current(ctx, req.City)
	if err != nil {
		r.log.Warn("weather lookup failed", zap.String("city", req.City), zap.Error(err))
		reading = domain.UnknownWeather()
	}

	category := domain.Classify(req.Mood, reading.Condition, req.Age)
	r.log.Debug("classified session",
		zap.String("mood", req.Mood),
		zap.String("condition", reading.Condition),
		zap.Int("age", req.Age),
		zap.String("category", category.String()),
	)

	playlist := r.resolver.Resolve(ctx, category, req.Language, req.YearRange)

	var query *string
	var playlistURL string
	if playlist.Found() {
		q := playlist.Query
		query = &q
		playlistURL = playlist.URL
	}
	// The entry is written even if the caller went away mid-search.
	r.sessions.Record(context.WithoutCancel(ctx), req.Nickname, query, playlistURL)

	return domain.Recommendation{
		Request:  req,
		Weather:  reading,
		Category: category,
		Playlist: playlist,
	}
}

// History returns the session log.
func (r *Recommender) History(ctx context.Context) ([]domain.SessionLogEntry, error) {
	return r.sessions.History(ctx)
}
