package types

// CurrentWeather is the current observation. Pointer fields distinguish a
// missing reading from a genuine zero.
type CurrentWeather struct {
	Time                     string   `json:"time,omitempty"`
	Temperature              *float64 `json:"temperature,omitempty"`
	Windspeed                *float64 `json:"windspeed,omitempty"`
	Weathercode              *int     `json:"weathercode,omitempty"`
	Humidity                 *int     `json:"humidity,omitempty"`
	PrecipitationProbability *int     `json:"precipitation_probability,omitempty"`
}

// NextDayWeather is the forecast for tomorrow.
type NextDayWeather struct {
	TemperatureMax *float64 `json:"temperature_max,omitempty"`
	TemperatureMin *float64 `json:"temperature_min,omitempty"`
	Weathercode    *int     `json:"weathercode,omitempty"`
}

// WeatherUnits passes the provider's unit strings through for display.
type WeatherUnits struct {
	Temperature string `json:"temperature,omitempty"`
	Windspeed   string `json:"windspeed,omitempty"`
}

// Weather is the canonical weather section.
type Weather struct {
	Current *CurrentWeather `json:"current,omitempty"`
	NextDay *NextDayWeather `json:"next_day,omitempty"`
	Units   *WeatherUnits   `json:"units,omitempty"`
}
