package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Ayush0023/Weather-Zone/internal/config"
	"github.com/Ayush0023/Weather-Zone/internal/mapview"
	"github.com/Ayush0023/Weather-Zone/internal/providers/openmeteo"
	"github.com/Ayush0023/Weather-Zone/internal/render"
	"github.com/Ayush0023/Weather-Zone/internal/types"
)

// The current card plus at most four forecast days per lookup.
const maxForecastCards = 4

// ForecastProvider defines the interface for forecast data providers.
type ForecastProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

// LookupResult is the rendered output of one completed lookup: the current
// card first, then forecast cards in ascending date order.
type LookupResult struct {
	Location types.GeoLocation    `json:"location"`
	Cards    []types.RenderedCard `json:"cards"`
}

type Service interface {
	Lookup(ctx context.Context, loc types.GeoLocation) (*LookupResult, error)
	Latest() (*LookupResult, bool)
}

type weatherService struct {
	forecastProvider ForecastProvider
	notifier         mapview.Notifier
	display          *Display
	cfg              *config.Config
	logger           *slog.Logger
}

// NewWeatherService creates a weather service backed by the Open-Meteo
// forecast API. The notifier is optional; pass nil when no map service is
// configured.
func NewWeatherService(cfg *config.Config, httpClient *http.Client, notifier mapview.Notifier, logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(openmeteo.NewForecastClient(httpClient), notifier, cfg, logger)
}

// NewWeatherServiceWithProvider creates a weather service with a custom
// provider. This is useful for testing with mock providers.
func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	notifier mapview.Notifier,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		notifier:         notifier,
		display:          NewDisplay(),
		cfg:              cfg,
		logger:           logger.With("component", "weather-service"),
	}
}

// Lookup fetches current conditions plus the daily forecast for a resolved
// location and renders them as cards. On success the shared display is
// swapped atomically and the map notifier is poked; on failure the display
// keeps its previous content.
func (s *weatherService) Lookup(ctx context.Context, loc types.GeoLocation) (*LookupResult, error) {
	gen := s.display.Begin()

	apiResponse, err := s.forecastProvider.GetForecast(ctx, loc.Latitude, loc.Longitude, s.cfg.App.ForecastDays)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"displayName", loc.DisplayName,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	result := &LookupResult{
		Location: loc,
		Cards:    buildCards(loc.DisplayName, apiResponse),
	}

	if !s.display.Commit(gen, result) {
		// A newer lookup already rendered; this one stays off the shared
		// surface and off the map.
		s.logger.Debug("dropping stale lookup result", "displayName", loc.DisplayName)
		return result, nil
	}

	s.notifyMap(ctx, loc)
	return result, nil
}

// Latest returns the currently displayed lookup result.
func (s *weatherService) Latest() (*LookupResult, bool) {
	return s.display.Latest()
}

func (s *weatherService) notifyMap(ctx context.Context, loc types.GeoLocation) {
	if s.notifier == nil {
		s.logger.Debug("map notifier not configured, skipping recenter")
		return
	}
	if err := s.notifier.Recenter(ctx, loc.Latitude, loc.Longitude, s.cfg.Map.Zoom); err != nil {
		// Best effort: the cards are already committed.
		s.logger.Warn("failed to recenter map",
			"latitude", loc.Latitude,
			"longitude", loc.Longitude,
			"error", err,
		)
	}
}

func buildCards(displayName string, apiResponse *openmeteo.ForecastAPIResponse) []types.RenderedCard {
	tz, err := time.LoadLocation(apiResponse.Timezone)
	if err != nil {
		tz = time.UTC
	}

	currentSample := types.WeatherSample{
		TemperatureC: apiResponse.Current.Temperature2M,
		WeatherCode:  apiResponse.Current.WeatherCode,
		WindSpeedMS:  apiResponse.Current.WindSpeed10M,
		HumidityPct:  apiResponse.Current.RelativeHumidity2M,
		Date:         toDate(apiResponse.Current.Time, "2006-01-02T15:04", tz),
	}

	cards := make([]types.RenderedCard, 0, 1+maxForecastCards)
	cards = append(cards, render.Card(displayName, currentSample, true))

	daily := apiResponse.Daily

	// Daily index 0 is today, already covered by the current block.
	for i := 1; i < min(maxForecastCards+1, len(daily.Time)); i++ {
		sample := types.WeatherSample{
			TemperatureC: averageTemperature(daily, i),
			WeatherCode:  codeAt(daily.WeatherCode, i),
			WindSpeedMS:  floatAt(daily.WindSpeed10MMax, i),
			HumidityPct:  floatAt(daily.RelativeHumidity2MMax, i),
			Date:         toDate(daily.Time[i], "2006-01-02", tz),
		}
		cards = append(cards, render.Card(displayName, sample, false))
	}

	return cards
}

// averageTemperature is the mean of a day's max and min, or nil when either
// array is short.
func averageTemperature(daily openmeteo.DailyBlock, i int) *float64 {
	maxTemp := floatAt(daily.Temperature2MMax, i)
	minTemp := floatAt(daily.Temperature2MMin, i)
	if maxTemp == nil || minTemp == nil {
		return nil
	}
	avg := (*maxTemp + *minTemp) / 2
	return &avg
}

func floatAt(values []float64, i int) *float64 {
	if i < 0 || i >= len(values) {
		return nil
	}
	v := values[i]
	return &v
}

func codeAt(values []int, i int) int {
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}

// toDate parses a provider timestamp and truncates it to its calendar date
// in the response's timezone. Parse failures yield the zero time, which
// still renders.
func toDate(value, layout string, tz *time.Location) time.Time {
	t, err := time.ParseInLocation(layout, value, tz)
	if err != nil {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, tz)
}
