package nws

import (
	"encoding/json"

	"noaa-forecast/internal/types"
)

// PointAPIResponse is the /points/{lat},{lon} document
type PointAPIResponse struct {
	Properties PointProperties `json:"properties"`
}

type PointProperties struct {
	Cwa              string `json:"cwa"`
	GridID           string `json:"gridId"`
	GridX            int    `json:"gridX"`
	GridY            int    `json:"gridY"`
	Forecast         string `json:"forecast"`
	ForecastHourly   string `json:"forecastHourly"`
	ForecastGridData string `json:"forecastGridData"`
	TimeZone         string `json:"timeZone"`
}

// ForecastAPIResponse is shared by the daily and hourly forecast documents
type ForecastAPIResponse struct {
	Properties ForecastProperties `json:"properties"`
}

type ForecastProperties struct {
	Units             string   `json:"units"`
	ForecastGenerator string   `json:"forecastGenerator"`
	GeneratedAt       string   `json:"generatedAt"`
	UpdateTime        string   `json:"updateTime"`
	Periods           []Period `json:"periods"`
}

// Period is a single daily half-day or hourly entry
type Period struct {
	Number                     int          `json:"number"`
	Name                       string       `json:"name"`
	StartTime                  string       `json:"startTime"`
	EndTime                    string       `json:"endTime"`
	IsDaytime                  bool         `json:"isDaytime"`
	Temperature                types.Number `json:"temperature"`
	TemperatureUnit            string       `json:"temperatureUnit"`
	ProbabilityOfPrecipitation types.Number `json:"probabilityOfPrecipitation"`
	RelativeHumidity           types.Number `json:"relativeHumidity"`
	WindSpeed                  string       `json:"windSpeed"`
	WindDirection              string       `json:"windDirection"`
	Icon                       string       `json:"icon"`
	ShortForecast              string       `json:"shortForecast"`
	DetailedForecast           string       `json:"detailedForecast"`
}

// GridAPIResponse keeps the gridpoints properties raw; the grid package
// decodes the variables it knows about
type GridAPIResponse struct {
	Properties json.RawMessage `json:"properties"`
}

// ForecastData bundles the three documents needed for one location
type ForecastData struct {
	Point  *PointAPIResponse
	Daily  *ForecastAPIResponse
	Hourly *ForecastAPIResponse
	Grid   *GridAPIResponse
}
