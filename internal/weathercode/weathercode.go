package weathercode

// Icons grouped by condition, selected by ordered code ranges below.
const (
	IconClearSky     = "☀️"
	IconCloudy       = "☁️"
	IconFog          = "🌫️"
	IconRain         = "🌧️"
	IconSnow         = "❄️"
	IconThunderstorm = "⛈️"
	IconPartlyCloudy = "🌤️"
)

// DescriptionUnknown is the fallback for codes without a table entry.
const DescriptionUnknown = "Unknown"

// descriptions maps Open-Meteo WMO weather codes to human-readable text.
// https://open-meteo.com/en/docs#weathervariables
var descriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// Classify maps an integer weather code to a description and an icon glyph.
// It is total: unknown codes get the "Unknown" description, and codes
// outside every icon range get the partly-cloudy glyph.
func Classify(code int) (description, icon string) {
	description, ok := descriptions[code]
	if !ok {
		description = DescriptionUnknown
	}
	return description, iconFor(code)
}

// iconFor evaluates disjoint code ranges top to bottom; first match wins.
func iconFor(code int) string {
	switch {
	case code == 0:
		return IconClearSky
	case code == 2 || code == 3:
		return IconCloudy
	case code == 45 || code == 48:
		return IconFog
	case code >= 51 && code <= 67:
		return IconRain
	case code >= 71 && code <= 86:
		return IconSnow
	case code >= 95:
		return IconThunderstorm
	default:
		return IconPartlyCloudy
	}
}
