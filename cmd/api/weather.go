package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is returned for failed requests
type ErrorResponse struct {
	Error string `json:"error" example:"failed to fetch current conditions"`
}

// handleWeather godoc
// @Summary Current conditions at Bukovel
// @Description Returns the current 2m air temperature and whether it is cold enough for ski season
// @Tags weather
// @Produce json
// @Success 200 {object} weather.CurrentConditions
// @Failure 502 {object} ErrorResponse "Forecast provider unavailable"
// @Router /api/weather [get]
func (app *App) handleWeather(c *gin.Context) {
	conditions, err := app.weatherService.CurrentConditions(c.Request.Context())
	if err != nil {
		app.logger.Error("failed to get current conditions", "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch current conditions"})
		return
	}

	c.JSON(http.StatusOK, conditions)
}
