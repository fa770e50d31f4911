package spotify

// spotifyPlaylist is a simplified playlist object from the search endpoint.
type spotifyPlaylist struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

// searchPlaylistsResponse wraps the paging object for type=playlist.
// Spotify may return null entries inside items.
type searchPlaylistsResponse struct {
	Playlists struct {
		Items []*spotifyPlaylist `json:"items"`
		Total int                `json:"total"`
	} `json:"playlists"`
}
