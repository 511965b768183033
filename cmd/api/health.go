package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notinterrested/isitskiingyet/internal/store"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// HealthResponse reports liveness and whether forecasts are persisted.
// CosmosEnabled is true only when the active store is Cosmos DB.
type HealthResponse struct {
	Status             string `json:"status" example:"ok"`
	CosmosEnabled      bool   `json:"cosmos_enabled" example:"true"`
	PersistenceEnabled bool   `json:"persistence_enabled" example:"true"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleHealth godoc
// @Summary Health check
// @Description Always succeeds; reports whether the record store is enabled
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (app *App) handleHealth(c *gin.Context) {
	enabled := app.recorderService.PersistenceEnabled()
	c.JSON(http.StatusOK, HealthResponse{
		Status:             "ok",
		CosmosEnabled:      enabled && app.recorderService.Backend() == store.BackendCosmos,
		PersistenceEnabled: enabled,
	})
}
