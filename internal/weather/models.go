package weather

import (
	"time"

	"noaa-forecast/internal/providers/nws"
)

// Period is an NWS forecast period with the values resolved from the grid.
// Every pointer field is in the display unit system and is nil when the grid
// had no coverage for the period.
type Period struct {
	nws.Period

	Start time.Time

	Temperature    *float64
	MaxTemperature *float64
	MinTemperature *float64

	SnowAccumulation *float64
	RainAccumulation *float64
	WindGust         *float64

	// hourly only
	RelativeHumidity *float64
	FeelsLike        *float64
}

// NormalizedForecast is ready for display; every field is pre-formatted
type NormalizedForecast struct {
	Currently Currently       `json:"currently"`
	Summary   string          `json:"summary"`
	Hourly    []DisplayPeriod `json:"hourly"`
	Daily     []DisplayPeriod `json:"daily"`
	Icons     InlineIcons     `json:"icons"`
	Layout    string          `json:"layout"`
}

type Currently struct {
	Temperature      string        `json:"temperature"`
	FeelsLike        string        `json:"feelsLike"`
	AnimatedIconID   string        `json:"animatedIconId,omitempty"`
	AnimatedIconName string        `json:"animatedIconName,omitempty"`
	IconPath         string        `json:"iconPath,omitempty"`
	TempRange        HiLow         `json:"tempRange"`
	Precipitation    Precipitation `json:"precipitation"`
	Wind             Wind          `json:"wind"`
}

// DisplayPeriod is one tile of the hourly or daily forecast. Hourly periods
// carry Time and Temperature, daily periods carry Day and TempRange.
type DisplayPeriod struct {
	Time             string        `json:"time,omitempty"`
	Day              string        `json:"day,omitempty"`
	AnimatedIconID   string        `json:"animatedIconId,omitempty"`
	AnimatedIconName string        `json:"animatedIconName,omitempty"`
	IconPath         string        `json:"iconPath,omitempty"`
	Temperature      string        `json:"temperature,omitempty"`
	TempRange        *HiLow        `json:"tempRange,omitempty"`
	Precipitation    Precipitation `json:"precipitation"`
	Wind             Wind          `json:"wind"`
}

type HiLow struct {
	High string `json:"high,omitempty"`
	Low  string `json:"low,omitempty"`
}

type Precipitation struct {
	Pop              string `json:"pop,omitempty"`
	Accumulation     string `json:"accumulation,omitempty"`
	AccumulationType string `json:"accumulationType,omitempty"`
}

type Wind struct {
	WindSpeed string `json:"windSpeed"`
	WindGust  string `json:"windGust,omitempty"`
}

// InlineIcons are the small indicators shown beside precipitation and wind
type InlineIcons struct {
	Rain string `json:"rain"`
	Snow string `json:"snow"`
	Wind string `json:"wind"`
}

// Snapshot is the result of one refresh. Token strictly increases across
// refreshes of the same service.
type Snapshot struct {
	Token       int64               `json:"token"`
	RefreshedAt time.Time           `json:"refreshedAt"`
	Timezone    string              `json:"timezone,omitempty"`
	Forecast    *NormalizedForecast `json:"forecast"`
}
