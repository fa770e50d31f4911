package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
	"github.com/ewilliams-labs/moodtunes/internal/core/ports"
)

// SearchPlaylists runs a type=playlist search and returns up to limit playlists.
func (c *Client) SearchPlaylists(ctx context.Context, query string, limit int) ([]domain.PlaylistRef, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, ports.ErrMissingCredentials
	}
	if limit < 1 {
		limit = 1
	}

	searchURL, err := url.Parse(fmt.Sprintf("%s/search", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}

	q := searchURL.Query()
	q.Set("q", query)
	q.Set("type", "playlist")
	q.Set("limit", strconv.Itoa(limit))
	searchURL.RawQuery = q.Encode()

	c.log.Debug("spotify search request", zap.String("url", searchURL.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: failed to create search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify adapter: search status %d", resp.StatusCode)
	}

	var body searchPlaylistsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("spotify adapter: search decode error: %w", err)
	}

	refs := mapSearchToDomain(body)
	if len(refs) > limit {
		refs = refs[:limit]
	}
	return refs, nil
}
