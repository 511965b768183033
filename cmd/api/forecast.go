package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	minHistoryLimit = 1
	maxHistoryLimit = 1000
)

// HistoryQuery holds the query parameters for the history endpoint
type HistoryQuery struct {
	Limit int `form:"limit,default=10"`
}

// handleUpdateForecast godoc
// @Summary Fetch and record the 14-day forecast
// @Description Fetches daily maximum temperatures for the next 14 days and stores them when persistence is enabled
// @Tags forecast
// @Produce json
// @Success 200 {object} recorder.UpdateResult
// @Failure 429 {object} ErrorResponse "Too many update requests"
// @Failure 502 {object} ErrorResponse "Forecast provider unavailable"
// @Router /api/update-forecast [post]
func (app *App) handleUpdateForecast(c *gin.Context) {
	result, err := app.recorderService.UpdateForecast(c.Request.Context())
	if err != nil {
		app.logger.Error("failed to update forecast", "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch forecast"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleHistory godoc
// @Summary Recently recorded forecasts
// @Description Returns stored forecasts, newest first. When persistence is disabled the list is empty, a note explains why, and the range of limit is not checked.
// @Tags forecast
// @Produce json
// @Param limit query int false "Maximum number of records" default(10) minimum(1) maximum(1000)
// @Success 200 {object} store.History
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 500 {object} ErrorResponse "Record store failure"
// @Router /api/history [get]
func (app *App) handleHistory(c *gin.Context) {
	var query HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
		return
	}

	// A disabled store answers with its note whatever the limit
	if app.recorderService.PersistenceEnabled() && (query.Limit < minHistoryLimit || query.Limit > maxHistoryLimit) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer between 1 and 1000"})
		return
	}

	history, err := app.recorderService.History(c.Request.Context(), query.Limit)
	if err != nil {
		app.logger.Error("failed to read forecast history", "limit", query.Limit, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to read forecast history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
