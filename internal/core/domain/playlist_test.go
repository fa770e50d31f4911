package domain

import (
	"errors"
	"testing"
)

func TestNewFoundResult(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		query   string
		wantID  string
		wantErr error
	}{
		{
			name:   "plain playlist url",
			url:    "https://open.spotify.com/playlist/37i9dQZF1DX0XUfTFmNBRM",
			query:  "chill hindi songs",
			wantID: "37i9dQZF1DX0XUfTFmNBRM",
		},
		{
			name:   "strips query string",
			url:    "https://open.spotify.com/playlist/abc123?si=xyz",
			query:  "bollywood songs",
			wantID: "abc123",
		},
		{
			name:    "rejects empty url",
			url:     "",
			wantErr: ErrInvalidPlaylistURL,
		},
		{
			name:    "rejects trailing slash",
			url:     "https://open.spotify.com/playlist/",
			wantErr: ErrInvalidPlaylistURL,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewFoundResult(tc.url, tc.query)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Found() {
				t.Fatalf("expected found status, got %q", got.Status)
			}
			if got.ID != tc.wantID {
				t.Fatalf("ID: got %q, want %q", got.ID, tc.wantID)
			}
			if got.URL != tc.url || got.Query != tc.query {
				t.Fatalf("unexpected result %+v", got)
			}
			if got.DisplayID() != tc.wantID {
				t.Fatalf("DisplayID: got %q, want %q", got.DisplayID(), tc.wantID)
			}
		})
	}
}

func TestPlaylistResult_Message(t *testing.T) {
	tests := []struct {
		status ResultStatus
		want   string
	}{
		{StatusNotFound, "No playlist found — playing Trending fallback"},
		{StatusMissingCredentials, "Missing Spotify credentials"},
		{StatusInternalError, "Internal error while searching playlist"},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			r := FailedResult(tc.status)
			if r.Found() {
				t.Fatalf("failure result reported found")
			}
			if r.URL != "" {
				t.Fatalf("expected no url, got %q", r.URL)
			}
			if got := r.Message(); got != tc.want {
				t.Fatalf("Message: got %q, want %q", got, tc.want)
			}
			if got := r.DisplayID(); got != tc.want {
				t.Fatalf("DisplayID: got %q, want %q", got, tc.want)
			}
		})
	}
}
