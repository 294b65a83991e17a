package normalize

import "github.com/FACorreiaa/terradart-api/internal/types"

// OpenMeteoCurrent is the current_weather block of the provider payload.
type OpenMeteoCurrent struct {
	Temperature *float64 `json:"temperature"`
	Windspeed   *float64 `json:"windspeed"`
	Weathercode *int     `json:"weathercode"`
	Time        string   `json:"time"`
}

// OpenMeteoUnits is the raw current_weather_units block, passed through so
// the UI renders the provider's own unit strings.
type OpenMeteoUnits struct {
	Temperature string `json:"temperature"`
	Windspeed   string `json:"windspeed"`
}

// OpenMeteoHourly carries the hourly series we sample for humidity and
// precipitation probability at the current observation time.
type OpenMeteoHourly struct {
	Time                     []string `json:"time"`
	RelativeHumidity2M       []int    `json:"relativehumidity_2m"`
	PrecipitationProbability []int    `json:"precipitation_probability"`
}

// OpenMeteoDaily carries the daily series; index 0 is today, index 1 is the
// next-day forecast we surface.
type OpenMeteoDaily struct {
	Time             []string  `json:"time"`
	Temperature2MMax []float64 `json:"temperature_2m_max"`
	Temperature2MMin []float64 `json:"temperature_2m_min"`
	Weathercode      []int     `json:"weathercode"`
}

// OpenMeteoPayload is the raw weather provider response.
type OpenMeteoPayload struct {
	CurrentWeather      *OpenMeteoCurrent `json:"current_weather"`
	CurrentWeatherUnits *OpenMeteoUnits   `json:"current_weather_units"`
	Hourly              *OpenMeteoHourly  `json:"hourly"`
	Daily               *OpenMeteoDaily   `json:"daily"`
}

// Weather maps the raw provider payload into the canonical weather section.
// Every block is optional; whatever is present is surfaced and the rest is
// left nil.
func Weather(raw *OpenMeteoPayload) *types.Weather {
	if raw == nil {
		return nil
	}
	w := &types.Weather{}
	if cw := raw.CurrentWeather; cw != nil {
		current := &types.CurrentWeather{
			Time:        cw.Time,
			Temperature: cw.Temperature,
			Windspeed:   cw.Windspeed,
			Weathercode: cw.Weathercode,
		}
		if raw.Hourly != nil {
			if idx := hourlyIndex(raw.Hourly.Time, cw.Time); idx >= 0 {
				if idx < len(raw.Hourly.RelativeHumidity2M) {
					humidity := raw.Hourly.RelativeHumidity2M[idx]
					current.Humidity = &humidity
				}
				if idx < len(raw.Hourly.PrecipitationProbability) {
					precip := raw.Hourly.PrecipitationProbability[idx]
					current.PrecipitationProbability = &precip
				}
			}
		}
		w.Current = current
	}
	if d := raw.Daily; d != nil && len(d.Time) > 1 {
		next := &types.NextDayWeather{}
		if len(d.Temperature2MMax) > 1 {
			next.TemperatureMax = &d.Temperature2MMax[1]
		}
		if len(d.Temperature2MMin) > 1 {
			next.TemperatureMin = &d.Temperature2MMin[1]
		}
		if len(d.Weathercode) > 1 {
			next.Weathercode = &d.Weathercode[1]
		}
		w.NextDay = next
	}
	if u := raw.CurrentWeatherUnits; u != nil {
		w.Units = &types.WeatherUnits{Temperature: u.Temperature, Windspeed: u.Windspeed}
	}
	if w.Current == nil && w.NextDay == nil && w.Units == nil {
		return nil
	}
	return w
}

// hourlyIndex finds the hourly slot matching the current observation time.
// Provider timestamps are ISO-8601 to minute precision; the hourly series is
// hour-aligned, so fall back to a prefix match on the hour.
func hourlyIndex(series []string, current string) int {
	if current == "" {
		return -1
	}
	for i, t := range series {
		if t == current {
			return i
		}
	}
	if len(current) >= 13 {
		hour := current[:13]
		for i, t := range series {
			if len(t) >= 13 && t[:13] == hour {
				return i
			}
		}
	}
	return -1
}
