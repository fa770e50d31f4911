package domain

import (
	"errors"
	"strings"
)

// ErrInvalidPlaylistURL is returned when a provider hands back an unusable URL.
var ErrInvalidPlaylistURL = errors.New("domain: invalid playlist url")

// ResultStatus tags the outcome of a playlist resolution.
type ResultStatus string

const (
	StatusFound              ResultStatus = "found"
	StatusNotFound           ResultStatus = "not_found"
	StatusMissingCredentials ResultStatus = "missing_credentials"
	StatusInternalError      ResultStatus = "internal_error"
)

// Display messages for the failure statuses.
const (
	MessageNotFound           = "No playlist found — playing Trending fallback"
	MessageMissingCredentials = "Missing Spotify credentials"
	MessageInternalError      = "Internal error while searching playlist"
)

// PlaylistRef is a single playlist returned by a search provider.
type PlaylistRef struct {
	ID   string
	Name string
	URL  string
}

// PlaylistResult is the outcome of a cascade run. URL, ID and Query are only
// populated when Status is StatusFound.
type PlaylistResult struct {
	Status ResultStatus `json:"status"`
	URL    string       `json:"url,omitempty"`
	ID     string       `json:"id,omitempty"`
	Query  string       `json:"query,omitempty"`
}

// NewFoundResult builds a successful result from a playlist URL and the query
// that matched it.
func NewFoundResult(url, query string) (PlaylistResult, error) {
	id := PlaylistIDFromURL(url)
	if id == "" {
		return PlaylistResult{}, ErrInvalidPlaylistURL
	}
	return PlaylistResult{
		Status: StatusFound,
		URL:    url,
		ID:     id,
		Query:  query,
	}, nil
}

// FailedResult builds a result for one of the failure statuses.
func FailedResult(status ResultStatus) PlaylistResult {
	return PlaylistResult{Status: status}
}

// Found reports whether a playlist was matched.
func (r PlaylistResult) Found() bool {
	return r.Status == StatusFound
}

// Message returns the user-facing text for a failure status, or "" on success.
func (r PlaylistResult) Message() string {
	switch r.Status {
	case StatusFound:
		return ""
	case StatusNotFound:
		return MessageNotFound
	case StatusMissingCredentials:
		return MessageMissingCredentials
	default:
		return MessageInternalError
	}
}

// DisplayID is the playlist ID when found and the failure message otherwise.
func (r PlaylistResult) DisplayID() string {
	if r.Found() {
		return r.ID
	}
	return r.Message()
}

// PlaylistIDFromURL takes the last path segment of a shareable URL and drops
// any query string.
func PlaylistIDFromURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	segment := url[strings.LastIndex(url, "/")+1:]
	if idx := strings.Index(segment, "?"); idx != -1 {
		segment = segment[:idx]
	}
	return segment
}
