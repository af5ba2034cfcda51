package main

import (
	"net/http"

	"github.com/Ayush0023/Weather-Zone/internal/theme"

	"github.com/gin-gonic/gin"
)

// ThemeResponse reports the persisted dark mode preference
type ThemeResponse struct {
	DarkMode string `json:"darkMode" example:"enabled"` // "enabled" or "disabled"
}

// handleGetTheme godoc
// @Summary Get the current theme preference
// @Description Return whether dark mode is enabled
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeResponse
// @Router /theme [get]
func (app *App) handleGetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, ThemeResponse{
		DarkMode: theme.Value(app.themeStore.Enabled()),
	})
}

// handleToggleTheme godoc
// @Summary Toggle dark mode
// @Description Flip the dark mode preference and persist it for future sessions
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeResponse
// @Failure 500 {object} map[string]string
// @Router /theme/toggle [post]
func (app *App) handleToggleTheme(c *gin.Context) {
	enabled, err := app.themeStore.Toggle()
	if err != nil {
		app.logger.Error("failed to persist theme preference", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist theme preference"})
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{DarkMode: theme.Value(enabled)})
}
