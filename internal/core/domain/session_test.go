package domain

import (
	"testing"
	"time"
)

func TestNewSessionLogEntry(t *testing.T) {
	at := time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local)
	query := "chill hindi songs"

	tests := []struct {
		name         string
		nickname     string
		query        *string
		playlist     string
		wantUser     string
		wantPlaylist string
	}{
		{"all fields", "asha", &query, "https://open.spotify.com/playlist/1", "asha", "https://open.spotify.com/playlist/1"},
		{"defaults", "", nil, "", "Guest", "None"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewSessionLogEntry(at, tc.nickname, tc.query, tc.playlist)
			if e.Timestamp != "2024-03-09 07:05:01" {
				t.Fatalf("timestamp: got %q", e.Timestamp)
			}
			if e.User != tc.wantUser {
				t.Fatalf("user: got %q, want %q", e.User, tc.wantUser)
			}
			if e.Playlist != tc.wantPlaylist {
				t.Fatalf("playlist: got %q, want %q", e.Playlist, tc.wantPlaylist)
			}
			if e.Query != tc.query {
				t.Fatalf("query pointer changed")
			}
		})
	}
}
