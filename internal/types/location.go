package types

import "fmt"

// GeoLocation is a resolved lookup target: the display name shown on cards
// plus the coordinates weather data is fetched for. It is produced once per
// lookup and never mutated.
type GeoLocation struct {
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// FormatCoords renders a coordinate pair the way the UI falls back to when
// reverse geocoding yields no place name, e.g. "19.08, 72.88".
func FormatCoords(latitude, longitude float64) string {
	return fmt.Sprintf("%.2f, %.2f", latitude, longitude)
}
