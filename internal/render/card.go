package render

import (
	"fmt"
	"strconv"

	"github.com/Ayush0023/Weather-Zone/internal/types"
	"github.com/Ayush0023/Weather-Zone/internal/weathercode"
)

// MissingValue is the sentinel shown for fields the upstream response
// omitted, so "no data" never reads as zero.
const MissingValue = "N/A"

const dateLayout = "2006-01-02"

// Card builds the display record for one weather sample. The current card
// and the forecast card are two distinct shapes: the current card carries the
// chart placeholder and no temperature line, the forecast card carries the
// numeric temperature. Card never fails; missing data renders as sentinels.
func Card(displayName string, sample types.WeatherSample, isCurrent bool) types.RenderedCard {
	description, icon := weathercode.Classify(sample.WeatherCode)
	date := sample.Date.Format(dateLayout)

	card := types.RenderedCard{
		Icon:        icon,
		Description: description,
		IsCurrent:   isCurrent,
	}

	if isCurrent {
		card.Title = displayName
		card.ShowsChart = true
		card.Fields = []types.CardField{
			{Label: "Date", Value: date},
			{Label: "Wind Speed (m/s)", Value: floatValue(sample.WindSpeedMS)},
			{Label: "Humidity (%)", Value: floatValue(sample.HumidityPct)},
			{Label: "Air Quality", Value: "Good"},
		}
		return card
	}

	card.Title = fmt.Sprintf("%s (%s)", displayName, date)
	card.Fields = []types.CardField{
		{Label: "Temperature (°C)", Value: temperatureValue(sample.TemperatureC)},
		{Label: "Wind Speed (m/s)", Value: floatValue(sample.WindSpeedMS)},
		{Label: "Humidity (%)", Value: floatValue(sample.HumidityPct)},
		{Label: "Air Quality", Value: "Good"},
	}
	return card
}

// temperatureValue formats to one decimal place, e.g. 21.449 -> "21.4".
func temperatureValue(v *float64) string {
	if v == nil {
		return MissingValue
	}
	return fmt.Sprintf("%.1f", *v)
}

// floatValue prints the raw number without padding, e.g. 11.2 -> "11.2",
// 78 -> "78".
func floatValue(v *float64) string {
	if v == nil {
		return MissingValue
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
