package types

import "time"

// WeatherSample is one snapshot of weather data for a calendar date, either
// the current conditions or a single forecast day. Pointer fields are nil
// when the upstream response omitted the value, so "no data" stays
// distinguishable from zero.
type WeatherSample struct {
	TemperatureC *float64
	WeatherCode  int
	WindSpeedMS  *float64
	HumidityPct  *float64
	Date         time.Time
}
