package domain

import "strings"

var languageIndustries = map[string]string{
	"english":   "hollywood",
	"hindi":     "bollywood",
	"telugu":    "telugu",
	"tamil":     "tamil",
	"malayalam": "malayalam",
	"kannada":   "kannada",
	"punjabi":   "punjabi",
}

// IndustryFor returns the regional music-industry keyword for a language.
// Unknown languages come back lowercased and otherwise unchanged.
func IndustryFor(language string) string {
	lang := strings.ToLower(language)
	if industry, ok := languageIndustries[lang]; ok {
		return industry
	}
	return lang
}
