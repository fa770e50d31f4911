package domain

import "time"

// TimestampLayout is the format of SessionLogEntry.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// NoPlaylist is logged when a session ended without a playlist.
const NoPlaylist = "None"

// SessionLogEntry is one line of the history log. Entries are append-only.
type SessionLogEntry struct {
	Timestamp string  `json:"timestamp"`
	User      string  `json:"user"`
	Query     *string `json:"query"`
	Playlist  string  `json:"playlist"`
}

// NewSessionLogEntry fills in the documented defaults for an empty nickname
// or playlist URL.
func NewSessionLogEntry(at time.Time, nickname string, query *string, playlistURL string) SessionLogEntry {
	if nickname == "" {
		nickname = DefaultNickname
	}
	if playlistURL == "" {
		playlistURL = NoPlaylist
	}
	return SessionLogEntry{
		Timestamp: at.Format(TimestampLayout),
		User:      nickname,
		Query:     query,
		Playlist:  playlistURL,
	}
}

// QueryText returns the query or "" when none was recorded.
func (e SessionLogEntry) QueryText() string {
	if e.Query == nil {
		return ""
	}
	return *e.Query
}
