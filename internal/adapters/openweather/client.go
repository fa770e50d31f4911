// Package openweather looks up current conditions from the OpenWeatherMap
// current-weather endpoint.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
	"github.com/ewilliams-labs/moodtunes/internal/core/ports"
)

const DefaultBaseURL = "http://api.openweathermap.org/data/2.5"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ ports.WeatherProvider = (*Client)(nil)

type currentResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		// json.Number keeps the temperature exactly as the provider wrote it.
		Temp json.Number `json:"temp"`
	} `json:"main"`
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Current returns "{condition}, {temp}°C" and the lowercased condition. Any
// failure yields domain.UnknownWeather() and a non-nil error.
func (c *Client) Current(ctx context.Context, city string) (domain.WeatherReading, error) {
	u, err := url.Parse(c.baseURL + "/weather")
	if err != nil {
		return domain.UnknownWeather(), fmt.Errorf("openweather: invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.UnknownWeather(), fmt.Errorf("openweather: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.UnknownWeather(), fmt.Errorf("openweather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.UnknownWeather(), fmt.Errorf("openweather: unexpected status %d", resp.StatusCode)
	}

	var parsed currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.UnknownWeather(), fmt.Errorf("openweather: decode response: %w", err)
	}
	if len(parsed.Weather) == 0 || parsed.Weather[0].Main == "" {
		return domain.UnknownWeather(), fmt.Errorf("openweather: response has no weather condition")
	}
	if parsed.Main.Temp == "" {
		return domain.UnknownWeather(), fmt.Errorf("openweather: response has no temperature")
	}

	condition := parsed.Weather[0].Main
	return domain.WeatherReading{
		Display:   fmt.Sprintf("%s, %s°C", condition, parsed.Main.Temp.String()),
		Condition: strings.ToLower(condition),
		OK:        true,
	}, nil
}
