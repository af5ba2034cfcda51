package types

// CardField is one labeled value on a rendered card. Field order is display
// order.
type CardField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// RenderedCard is a display-ready projection of a WeatherSample. It carries
// no markup so any presentation layer (web, terminal, native) can consume it.
type RenderedCard struct {
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	IsCurrent   bool   `json:"isCurrent"`

	// ShowsChart marks the decorative chart placeholder slot that only the
	// current-conditions card carries.
	ShowsChart bool        `json:"showsChart"`
	Fields     []CardField `json:"fields"`
}
