package spotify

import "github.com/ewilliams-labs/moodtunes/internal/core/domain"

// mapPlaylistToDomain converts a raw Spotify playlist.
func mapPlaylistToDomain(sp spotifyPlaylist) domain.PlaylistRef {
	return domain.PlaylistRef{
		ID:   sp.ID,
		Name: sp.Name,
		URL:  sp.ExternalURLs.Spotify,
	}
}

// mapSearchToDomain drops null items and keeps provider order.
func mapSearchToDomain(resp searchPlaylistsResponse) []domain.PlaylistRef {
	refs := make([]domain.PlaylistRef, 0, len(resp.Playlists.Items))
	for _, item := range resp.Playlists.Items {
		if item == nil {
			continue
		}
		refs = append(refs, mapPlaylistToDomain(*item))
	}
	return refs
}
