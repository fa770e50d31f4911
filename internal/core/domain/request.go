package domain

import "strings"

const (
	DefaultNickname = "Guest"
	DefaultAge      = 25
)

// MoodRequest is one form submission, normalised.
type MoodRequest struct {
	Nickname  string `json:"nickname"`
	City      string `json:"city"`
	Mood      string `json:"mood"`
	Age       int    `json:"age"`
	Language  string `json:"language"`
	YearRange string `json:"year_range"`
}

// NewMoodRequest applies defaults and lowercases mood and language. The age is
// taken as given; callers substitute DefaultAge when it was missing.
func NewMoodRequest(nickname, city, mood string, age int, language, yearRange string) MoodRequest {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		nickname = DefaultNickname
	}
	return MoodRequest{
		Nickname:  nickname,
		City:      strings.TrimSpace(city),
		Mood:      strings.ToLower(strings.TrimSpace(mood)),
		Age:       age,
		Language:  strings.ToLower(strings.TrimSpace(language)),
		YearRange: strings.TrimSpace(yearRange),
	}
}

// Recommendation is everything one session produced.
type Recommendation struct {
	Request  MoodRequest    `json:"request"`
	Weather  WeatherReading `json:"weather"`
	Category Category       `json:"category"`
	Playlist PlaylistResult `json:"playlist"`
}
