package ports

import (
	"context"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
)

// WeatherProvider returns the current weather for a city. On failure it
// returns domain.UnknownWeather() together with the error.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (domain.WeatherReading, error)
}
