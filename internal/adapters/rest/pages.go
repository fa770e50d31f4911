package rest

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
)

var formMoods = []string{"happy", "sad", "relaxed", "inspired", "energetic", "nostalgic", "romantic", "devotional"}

type indexPage struct {
	Title  string
	Moods  []string
	Result bool
	Rec    domain.Recommendation
}

// Index handles GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, http.StatusOK, "index.html", indexPage{Title: "MoodTunes", Moods: formMoods})
}

// SubmitForm handles POST /
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	req := domain.NewMoodRequest(
		r.PostForm.Get("nickname"),
		r.PostForm.Get("city"),
		r.PostForm.Get("mood"),
		h.parseAge(r.PostForm.Get("age")),
		r.PostForm.Get("language"),
		r.PostForm.Get("year_range"),
	)

	rec := h.svc.Recommend(r.Context(), req)
	h.logSession(r, rec)

	h.renderTemplate(w, http.StatusOK, "index.html", indexPage{
		Title:  "MoodTunes",
		Moods:  formMoods,
		Result: true,
		Rec:    rec,
	})
}

// History handles GET /history
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.History(r.Context())
	if err != nil {
		h.log.Error("loading history", zap.String("request_id", RequestIDFrom(r.Context())), zap.Error(err))
		http.Error(w, "Error loading history: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.renderTemplate(w, http.StatusOK, "history.html", map[string]any{
		"Title":   "History",
		"Entries": entries,
	})
}

func (h *Handler) logSession(r *http.Request, rec domain.Recommendation) {
	h.log.Info("session served",
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.String("user", rec.Request.Nickname),
		zap.String("category", rec.Category.String()),
		zap.String("playlist_status", string(rec.Playlist.Status)),
	)
}

// parseAge coerces the form value, falling back to the default age.
func (h *Handler) parseAge(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DefaultAge
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		h.log.Warn("ignoring unparseable age", zap.String("age", raw))
		return domain.DefaultAge
	}
	return age
}
