package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
	"github.com/ewilliams-labs/moodtunes/internal/core/ports"
)

const searchLimit = 1

type queryParts struct {
	category  string
	language  string
	yearRange string
	industry  string
}

// cascade is ordered most specific first.
var cascade = []func(p queryParts) string{
	func(p queryParts) string { return fmt.Sprintf("%s %s %s songs", p.category, p.language, p.yearRange) },
	func(p queryParts) string { return fmt.Sprintf("%s %s songs", p.category, p.language) },
	func(p queryParts) string { return fmt.Sprintf("%s %s songs", p.industry, p.yearRange) },
	func(p queryParts) string { return fmt.Sprintf("%s songs", p.industry) },
	func(p queryParts) string { return fmt.Sprintf("Trending %s songs", p.language) },
}

func newQueryParts(category domain.Category, language, yearRange string) queryParts {
	return queryParts{
		category:  category.String(),
		language:  language,
		yearRange: yearRange,
		industry:  domain.IndustryFor(language),
	}
}

// CandidateQueries returns the full cascade for the given inputs.
func CandidateQueries(category domain.Category, language, yearRange string) []string {
	parts := newQueryParts(category, language, yearRange)
	queries := make([]string, 0, len(cascade))
	for _, build := range cascade {
		queries = append(queries, build(parts))
	}
	return queries
}

// PlaylistResolver walks the query cascade against a playlist searcher.
type PlaylistResolver struct {
	searcher ports.PlaylistSearcher
	log      *zap.Logger
}

// NewPlaylistResolver constructs a PlaylistResolver. A nil searcher resolves
// every request to StatusMissingCredentials.
func NewPlaylistResolver(searcher ports.PlaylistSearcher, log *zap.Logger) *PlaylistResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlaylistResolver{searcher: searcher, log: log}
}

// Resolve returns the first playlist matched by the cascade. Per-query
// failures are skipped; it never returns an error.
func (r *PlaylistResolver) Resolve(ctx context.Context, category domain.Category, language, yearRange string) (result domain.PlaylistResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("playlist resolver panicked", zap.Any("panic", rec))
			result = domain.FailedResult(domain.StatusInternalError)
		}
	}()

	if r.searcher == nil {
		r.log.Warn("playlist search skipped: credentials not set")
		return domain.FailedResult(domain.StatusMissingCredentials)
	}

	if err := r.searcher.Authorize(ctx); err != nil {
		if errors.Is(err, ports.ErrMissingCredentials) {
			r.log.Warn("playlist search skipped: credentials not set")
			return domain.FailedResult(domain.StatusMissingCredentials)
		}
		r.log.Error("playlist provider authorization failed", zap.Error(err))
		return domain.FailedResult(domain.StatusInternalError)
	}

	parts := newQueryParts(category, language, yearRange)
	for i, build := range cascade {
		if err := ctx.Err(); err != nil {
			r.log.Warn("playlist search canceled", zap.Error(err))
			return domain.FailedResult(domain.StatusInternalError)
		}

		query := build(parts)
		level := zap.Int("level", i+1)

		refs, err := r.searcher.SearchPlaylists(ctx, strings.TrimSpace(query), searchLimit)
		if err != nil {
			r.log.Warn("playlist query failed", level, zap.String("query", query), zap.Error(err))
			continue
		}
		if len(refs) == 0 {
			r.log.Debug("playlist query returned nothing", level, zap.String("query", query))
			continue
		}

		found, err := domain.NewFoundResult(refs[0].URL, query)
		if err != nil {
			r.log.Warn("playlist query returned unusable item", level, zap.String("query", query), zap.Error(err))
			continue
		}

		r.log.Info("playlist matched",
			level,
			zap.String("query", query),
			zap.String("playlist_url", found.URL),
			zap.String("playlist_id", found.ID),
		)
		return found
	}

	r.log.Info("no matching playlist found", zap.String("category", parts.category), zap.String("language", language))
	return domain.FailedResult(domain.StatusNotFound)
}
