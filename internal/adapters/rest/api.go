package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
)

type recommendationRequest struct {
	Nickname  string `json:"nickname"`
	City      string `json:"city"`
	Mood      string `json:"mood"`
	Age       *int   `json:"age"`
	Language  string `json:"language"`
	YearRange string `json:"year_range"`
}

type playlistResponse struct {
	Status  domain.ResultStatus `json:"status"`
	URL     string              `json:"url,omitempty"`
	ID      string              `json:"id,omitempty"`
	Query   string              `json:"query,omitempty"`
	Message string              `json:"message,omitempty"`
}

type recommendationResponse struct {
	Request  domain.MoodRequest    `json:"request"`
	Weather  domain.WeatherReading `json:"weather"`
	Category domain.Category       `json:"category"`
	Playlist playlistResponse      `json:"playlist"`
}

func isJSONContentType(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// CreateRecommendation handles POST /api/recommendations
func (h *Handler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var body recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	age := domain.DefaultAge
	if body.Age != nil {
		age = *body.Age
	}

	req := domain.NewMoodRequest(body.Nickname, body.City, body.Mood, age, body.Language, body.YearRange)
	rec := h.svc.Recommend(r.Context(), req)
	h.logSession(r, rec)

	writeJSON(w, http.StatusOK, recommendationResponse{
		Request:  rec.Request,
		Weather:  rec.Weather,
		Category: rec.Category,
		Playlist: playlistResponse{
			Status:  rec.Playlist.Status,
			URL:     rec.Playlist.URL,
			ID:      rec.Playlist.ID,
			Query:   rec.Playlist.Query,
			Message: rec.Playlist.Message(),
		},
	})
}

// ListHistory handles GET /api/history
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.History(r.Context())
	if err != nil {
		h.log.Error("loading history", zap.String("request_id", RequestIDFrom(r.Context())), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
