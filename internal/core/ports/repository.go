package ports

import (
	"context"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
)

// HistoryStore persists session log entries in insertion order.
type HistoryStore interface {
	Append(ctx context.Context, entry domain.SessionLogEntry) error
	List(ctx context.Context) ([]domain.SessionLogEntry, error)
}
