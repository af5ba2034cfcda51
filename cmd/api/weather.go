package main

import (
	"errors"
	"net/http"

	"github.com/Ayush0023/Weather-Zone/internal/location"
	"github.com/Ayush0023/Weather-Zone/internal/providers/geocoding"
	"github.com/Ayush0023/Weather-Zone/internal/providers/openmeteo"
	"github.com/Ayush0023/Weather-Zone/internal/types"

	"github.com/gin-gonic/gin"
)

// WeatherByCityInput defines the query parameters for the city lookup endpoint
type WeatherByCityInput struct {
	City string `form:"city"` // City name, e.g. Mumbai
}

// WeatherByCoordsInput defines the query parameters for the coordinate lookup endpoint
type WeatherByCoordsInput struct {
	Latitude  float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleWeatherByCity godoc
// @Summary Look up weather by city name
// @Description Geocode a city name and return the current conditions card plus up to four forecast cards
// @Tags weather
// @Produce json
// @Param city query string true "City name" example(Mumbai)
// @Success 200 {object} weather.LookupResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather [get]
func (app *App) handleWeatherByCity(c *gin.Context) {
	var input WeatherByCityInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, err := app.locationService.ResolveByName(c.Request.Context(), input.City)
	if err != nil {
		app.renderLookupError(c, err)
		return
	}

	app.runPipeline(c, loc)
}

// handleWeatherByCoords godoc
// @Summary Look up weather by coordinates
// @Description Reverse-geocode the coordinates for a display name and return the rendered weather cards
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(19.0760)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(72.8777)
// @Success 200 {object} weather.LookupResult
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather/coords [get]
func (app *App) handleWeatherByCoords(c *gin.Context) {
	var input WeatherByCoordsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, err := app.locationService.ResolveByCoords(c.Request.Context(), input.Latitude, input.Longitude)
	if err != nil {
		app.renderLookupError(c, err)
		return
	}

	app.runPipeline(c, loc)
}

// handleLatestWeather godoc
// @Summary Get the most recently displayed lookup
// @Description Return the cards from the last successful lookup without refetching
// @Tags weather
// @Produce json
// @Success 200 {object} weather.LookupResult
// @Failure 404 {object} map[string]string
// @Router /weather/latest [get]
func (app *App) handleLatestWeather(c *gin.Context) {
	result, ok := app.weatherService.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no weather lookup yet"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// runPipeline fetches and renders the cards for a resolved location
func (app *App) runPipeline(c *gin.Context, loc types.GeoLocation) {
	result, err := app.weatherService.Lookup(c.Request.Context(), loc)
	if err != nil {
		if errors.Is(err, openmeteo.ErrUnexpectedStatus) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "forecast service unavailable"})
			return
		}
		app.logger.Error("failed to look up weather",
			"location", loc.DisplayName,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up weather"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// renderLookupError maps location resolution errors onto HTTP statuses
func (app *App) renderLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, location.ErrEmptyCity),
		errors.Is(err, location.ErrInvalidLatitude),
		errors.Is(err, location.ErrInvalidLongitude):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, location.ErrCityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, geocoding.ErrUnexpectedStatus):
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding service unavailable"})
	default:
		app.logger.Error("failed to resolve location", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location"})
	}
}
