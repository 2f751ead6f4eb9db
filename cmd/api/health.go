package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message     string     `json:"message" example:"pong"`                               // Response message
	Token       int64      `json:"token,omitempty" example:"1705316400000"`              // Token of the latest refresh
	RefreshedAt *time.Time `json:"refreshedAt,omitempty" example:"2024-01-15T06:00:00Z"` // When the latest refresh finished
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running and report the latest forecast refresh, if any
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	resp := PingResponse{Message: "pong"}
	if snapshot, ok := app.weatherService.Latest(); ok {
		resp.Token = snapshot.Token
		refreshed := snapshot.RefreshedAt
		resp.RefreshedAt = &refreshed
	}
	c.JSON(http.StatusOK, resp)
}
