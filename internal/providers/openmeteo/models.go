package openmeteo

// ForecastAPIResponse mirrors the subset of the Open-Meteo forecast response
// this service requests: one current-conditions block plus daily arrays.
type ForecastAPIResponse struct {
	Timezone string       `json:"timezone"`
	Current  CurrentBlock `json:"current"`
	Daily    DailyBlock   `json:"daily"`
}

// CurrentBlock holds the instantaneous readings. Pointer fields stay nil
// when the API omits a value.
type CurrentBlock struct {
	Time               string   `json:"time"`
	Temperature2M      *float64 `json:"temperature_2m"`
	WeatherCode        int      `json:"weather_code"`
	WindSpeed10M       *float64 `json:"wind_speed_10m"`
	RelativeHumidity2M *float64 `json:"relative_humidity_2m"`
}

// DailyBlock holds parallel per-day arrays; index 0 is today.
type DailyBlock struct {
	Time                  []string  `json:"time"`
	WeatherCode           []int     `json:"weather_code"`
	Temperature2MMax      []float64 `json:"temperature_2m_max"`
	Temperature2MMin      []float64 `json:"temperature_2m_min"`
	WindSpeed10MMax       []float64 `json:"wind_speed_10m_max"`
	RelativeHumidity2MMax []float64 `json:"relative_humidity_2m_max"`
}
