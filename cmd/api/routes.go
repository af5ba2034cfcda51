package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	v1 := app.router.Group("/api/v1")
	{
		// Weather endpoints
		v1.GET("/weather", app.handleWeatherByCity)
		v1.GET("/weather/coords", app.handleWeatherByCoords)
		v1.GET("/weather/latest", app.handleLatestWeather)

		// Theme endpoints
		v1.GET("/theme", app.handleGetTheme)
		v1.POST("/theme/toggle", app.handleToggleTheme)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
