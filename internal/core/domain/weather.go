package domain

// UnknownDisplay is shown when the weather provider could not be reached.
const UnknownDisplay = "Unknown"

// WeatherReading is the current weather for one request.
type WeatherReading struct {
	Display   string `json:"display"`
	Condition string `json:"condition"`
	OK        bool   `json:"ok"`
}

// UnknownWeather is the degraded reading used when a lookup fails.
func UnknownWeather() WeatherReading {
	return WeatherReading{Display: UnknownDisplay, Condition: "unknown"}
}
