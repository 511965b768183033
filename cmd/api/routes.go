package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Liveness probe
	app.router.GET("/ping", app.handlePing)

	api := app.router.Group("/api")
	api.GET("/health", app.handleHealth)
	api.GET("/weather", app.handleWeather)
	api.GET("/history", app.handleHistory)

	update := []gin.HandlerFunc{}
	if app.updateLimiter != nil {
		update = append(update, rateLimit(app.updateLimiter))
	}
	update = append(update, app.handleUpdateForecast)
	api.POST("/update-forecast", update...)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
