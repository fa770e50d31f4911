package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
	"github.com/ewilliams-labs/moodtunes/internal/core/ports"
)

// SessionLogger appends one history entry per session.
type SessionLogger struct {
	store ports.HistoryStore
	now   func() time.Time
	log   *zap.Logger
}

// NewSessionLogger constructs a SessionLogger backed by store.
func NewSessionLogger(store ports.HistoryStore, log *zap.Logger) *SessionLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionLogger{store: store, now: time.Now, log: log}
}

// Record appends an entry. Storage failures are logged and swallowed so the
// session still renders.
func (s *SessionLogger) Record(ctx context.Context, nickname string, query *string, playlistURL string) {
	entry := domain.NewSessionLogEntry(s.now(), nickname, query, playlistURL)
	if err := s.store.Append(ctx, entry); err != nil {
		s.log.Error("failed to record session", zap.String("user", entry.User), zap.Error(err))
	}
}

// History returns every recorded entry.
func (s *SessionLogger) History(ctx context.Context) ([]domain.SessionLogEntry, error) {
	return s.store.List(ctx)
}
