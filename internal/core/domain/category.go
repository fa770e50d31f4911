package domain

import "strings"

// Category is a music-mood label used to build playlist search queries.
type Category string

const (
	CategoryParty      Category = "party"
	CategoryChill      Category = "chill"
	CategoryTop        Category = "top"
	CategoryClassical  Category = "classical"
	CategoryPop        Category = "pop"
	CategoryRetro      Category = "retro"
	CategoryLove       Category = "love"
	CategoryDevotional Category = "devotional"
	CategoryTrending   Category = "trending"
)

// retroAge is the first age that gets retro instead of pop.
const retroAge = 30

// Categories returns every label Classify can produce.
func Categories() []Category {
	return []Category{
		CategoryParty,
		CategoryChill,
		CategoryTop,
		CategoryClassical,
		CategoryPop,
		CategoryRetro,
		CategoryLove,
		CategoryDevotional,
		CategoryTrending,
	}
}

// Valid reports whether c is one of the fixed labels.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Classify maps a mood, a weather condition keyword and an age to a Category.
// Rules are evaluated in order and the first match wins, so "sad" beats the
// weather checks and "happy" only means party under clouds.
func Classify(mood, condition string, age int) Category {
	switch {
	case mood == "happy" && strings.Contains(condition, "clouds"):
		return CategoryParty
	case mood == "sad" || strings.Contains(condition, "rain"):
		return CategoryChill
	case mood == "relaxed":
		return CategoryTop
	case mood == "inspired" || condition == "snow" || condition == "hail":
		return CategoryClassical
	case (mood == "energetic" || mood == "nostalgic") && age < retroAge:
		return CategoryPop
	case (mood == "nostalgic" || mood == "energetic") && age >= retroAge:
		return CategoryRetro
	case mood == "romantic":
		return CategoryLove
	case mood == "devotional":
		return CategoryDevotional
	default:
		return CategoryTrending
	}
}
