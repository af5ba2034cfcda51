package geocoding

// SearchAPIResponse is the Open-Meteo geocoding response shape. Results is
// absent or empty when nothing matched.
type SearchAPIResponse struct {
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	Id        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}
