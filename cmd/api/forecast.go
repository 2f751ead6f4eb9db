package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"noaa-forecast/internal/providers/nws"
	"noaa-forecast/internal/types"
	"noaa-forecast/internal/weather"
)

// GetForecastForPointInput defines the query parameters for the forecast point endpoint
type GetForecastForPointInput struct {
	Latitude  *float64 `form:"latitude" binding:"required,min=-90,max=90"`    // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required,min=-180,max=180"` // Longitude in decimal degrees
}

// handleGetForecast godoc
// @Summary Get the latest forecast
// @Description Return the most recent normalized forecast for the configured location along with its refresh token
// @Tags forecast
// @Produce json
// @Success 200 {object} weather.Snapshot
// @Failure 503 {object} map[string]string
// @Router /forecast [get]
func (app *App) handleGetForecast(c *gin.Context) {
	snapshot, ok := app.weatherService.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "forecast not available yet"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// handleGetForecastForPoint godoc
// @Summary Get the forecast for a location
// @Description Fetch and normalize the NWS forecast for the given latitude and longitude
// @Tags forecast
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(40.8932)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-74.0117)
// @Success 200 {object} weather.NormalizedForecast
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /forecast/point [get]
func (app *App) handleGetForecastForPoint(c *gin.Context) {
	var input GetForecastForPointInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coords := types.NewCoords(*input.Latitude, *input.Longitude)

	// Delegate to business layer
	forecast, err := app.weatherService.GetForecast(c.Request.Context(), coords)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidLatitude), errors.Is(err, types.ErrInvalidLongitude):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, nws.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no forecast available for this location"})
		case errors.Is(err, weather.ErrNoDailyPeriods), errors.Is(err, weather.ErrNoHourlyPeriods):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			// Other errors are internal server errors
			app.logger.Error("failed to get forecast",
				"latitude", coords.Latitude,
				"longitude", coords.Longitude,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get forecast"})
		}
		return
	}

	c.JSON(http.StatusOK, forecast)
}
