package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
	"github.com/ewilliams-labs/moodtunes/internal/core/ports"
)

func TestCandidateQueries(t *testing.T) {
	got := CandidateQueries(domain.CategoryChill, "hindi", "2010s")
	want := []string{
		"chill hindi 2010s songs",
		"chill hindi songs",
		"bollywood 2010s songs",
		"bollywood songs",
		"Trending hindi songs",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("queries mismatch:\n got  %q\n want %q", got, want)
	}
}

func TestPlaylistResolver_Resolve(t *testing.T) {
	queries := CandidateQueries(domain.CategoryChill, "hindi", "2010s")
	hit := []domain.PlaylistRef{{ID: "pl5", URL: "https://open.spotify.com/playlist/pl5?si=abc"}}

	tests := []struct {
		name       string
		searcher   *mockSearcher
		nilSearch  bool
		wantStatus domain.ResultStatus
		wantQuery  string
		wantID     string
		wantCalls  int
	}{
		{
			name: "first query wins",
			searcher: &mockSearcher{results: map[string][]domain.PlaylistRef{
				queries[0]: {{URL: "https://open.spotify.com/playlist/first"}},
				queries[1]: {{URL: "https://open.spotify.com/playlist/second"}},
			}},
			wantStatus: domain.StatusFound,
			wantQuery:  queries[0],
			wantID:     "first",
			wantCalls:  1,
		},
		{
			name:       "falls through to the trending query",
			searcher:   &mockSearcher{results: map[string][]domain.PlaylistRef{queries[4]: hit}},
			wantStatus: domain.StatusFound,
			wantQuery:  "Trending hindi songs",
			wantID:     "pl5",
			wantCalls:  5,
		},
		{
			name: "per-query error does not abort the cascade",
			searcher: &mockSearcher{
				errs:    map[string]error{queries[0]: errors.New("boom")},
				results: map[string][]domain.PlaylistRef{queries[1]: {{URL: "https://open.spotify.com/playlist/q2"}}},
			},
			wantStatus: domain.StatusFound,
			wantQuery:  queries[1],
			wantID:     "q2",
			wantCalls:  2,
		},
		{
			name: "unusable item is skipped",
			searcher: &mockSearcher{results: map[string][]domain.PlaylistRef{
				queries[0]: {{URL: ""}},
				queries[2]: {{URL: "https://open.spotify.com/playlist/q3"}},
			}},
			wantStatus: domain.StatusFound,
			wantQuery:  queries[2],
			wantID:     "q3",
			wantCalls:  3,
		},
		{
			name:       "nothing found",
			searcher:   &mockSearcher{},
			wantStatus: domain.StatusNotFound,
			wantCalls:  5,
		},
		{
			name:       "missing credentials from searcher",
			searcher:   &mockSearcher{authErr: ports.ErrMissingCredentials},
			wantStatus: domain.StatusMissingCredentials,
		},
		{
			name:       "nil searcher means missing credentials",
			nilSearch:  true,
			wantStatus: domain.StatusMissingCredentials,
		},
		{
			name:       "authorization failure is an internal error",
			searcher:   &mockSearcher{authErr: errors.New("token endpoint down")},
			wantStatus: domain.StatusInternalError,
		},
		{
			name:       "panic is an internal error",
			searcher:   &mockSearcher{panicOn: queries[0]},
			wantStatus: domain.StatusInternalError,
			wantCalls:  1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var r *PlaylistResolver
			if tc.nilSearch {
				r = NewPlaylistResolver(nil, nil)
			} else {
				r = NewPlaylistResolver(tc.searcher, nil)
			}

			got := r.Resolve(context.Background(), domain.CategoryChill, "hindi", "2010s")

			if got.Status != tc.wantStatus {
				t.Fatalf("status: got %q, want %q", got.Status, tc.wantStatus)
			}
			if got.Query != tc.wantQuery {
				t.Fatalf("query: got %q, want %q", got.Query, tc.wantQuery)
			}
			if got.ID != tc.wantID {
				t.Fatalf("id: got %q, want %q", got.ID, tc.wantID)
			}
			if !got.Found() && got.URL != "" {
				t.Fatalf("expected no url on failure, got %q", got.URL)
			}
			if tc.searcher != nil && len(tc.searcher.calls) != tc.wantCalls {
				t.Fatalf("calls: got %d (%q), want %d", len(tc.searcher.calls), tc.searcher.calls, tc.wantCalls)
			}
		})
	}
}

func TestPlaylistResolver_NotFoundMessage(t *testing.T) {
	r := NewPlaylistResolver(&mockSearcher{}, nil)
	got := r.Resolve(context.Background(), domain.CategoryTrending, "english", "90s")
	if got.DisplayID() != "No playlist found — playing Trending fallback" {
		t.Fatalf("unexpected message %q", got.DisplayID())
	}
}

func TestPlaylistResolver_TrimsQueries(t *testing.T) {
	s := &mockSearcher{}
	r := NewPlaylistResolver(s, nil)
	r.Resolve(context.Background(), domain.CategoryTop, "", "")

	for _, q := range s.calls {
		if q != "" && (q[0] == ' ' || q[len(q)-1] == ' ') {
			t.Fatalf("query %q was not trimmed", q)
		}
	}
	if s.limits[0] != 1 {
		t.Fatalf("expected limit 1, got %d", s.limits[0])
	}
}

func TestPlaylistResolver_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &mockSearcher{}
	got := NewPlaylistResolver(s, nil).Resolve(ctx, domain.CategoryChill, "hindi", "2010s")
	if got.Status != domain.StatusInternalError {
		t.Fatalf("status: got %q, want %q", got.Status, domain.StatusInternalError)
	}
	if len(s.calls) != 0 {
		t.Fatalf("expected no searches, got %d", len(s.calls))
	}
}

// --- Mocks ---

type mockSearcher struct {
	authErr error
	results map[string][]domain.PlaylistRef
	errs    map[string]error
	panicOn string

	calls  []string
	limits []int
}

func (m *mockSearcher) Authorize(ctx context.Context) error {
	return m.authErr
}

func (m *mockSearcher) SearchPlaylists(ctx context.Context, query string, limit int) ([]domain.PlaylistRef, error) {
	m.calls = append(m.calls, query)
	m.limits = append(m.limits, limit)
	if query == m.panicOn {
		panic("unexpected payload")
	}
	if err, ok := m.errs[query]; ok {
		return nil, err
	}
	return m.results[query], nil
}
