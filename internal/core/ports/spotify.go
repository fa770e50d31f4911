package ports

import (
	"context"
	"errors"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
)

// ErrMissingCredentials indicates the playlist provider has no client id or secret.
var ErrMissingCredentials = errors.New("missing playlist provider credentials")

// PlaylistSearcher finds playlists for a free-text query.
type PlaylistSearcher interface {
	// Authorize makes sure the searcher can talk to the provider. It returns
	// ErrMissingCredentials when none are configured.
	Authorize(ctx context.Context) error
	SearchPlaylists(ctx context.Context, query string, limit int) ([]domain.PlaylistRef, error)
}
