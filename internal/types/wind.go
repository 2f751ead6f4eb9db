package types

import (
	"math"
	"strconv"
	"strings"
)

// Compass holds the sixteen point compass rose starting at north, in the
// abbreviations the NWS uses for windDirection.
var Compass = []string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// CompassIndex returns the position of an NWS direction abbreviation on the
// compass rose, or -1 when the direction is not recognized.
func CompassIndex(direction string) int {
	direction = strings.ToUpper(strings.TrimSpace(direction))
	for i, d := range Compass {
		if d == direction {
			return i
		}
	}
	return -1
}

// CompassIndexFromDegrees maps a bearing to its compass point
func CompassIndexFromDegrees(degrees float64) int {
	direction := (math.Mod(degrees, 360)+360)/22.5 + .5 // .5 for rounding
	return int(direction) % 16
}

// Ordinal translates an NWS direction through a set of sixteen display labels.
// A numeric bearing in degrees is placed on the nearest compass point.
// Anything else is returned unchanged.
func Ordinal(direction string, labels []string) string {
	i := CompassIndex(direction)
	if i < 0 {
		if degrees, err := strconv.ParseFloat(strings.TrimSpace(direction), 64); err == nil &&
			!math.IsNaN(degrees) && !math.IsInf(degrees, 0) {
			i = CompassIndexFromDegrees(degrees)
		}
	}
	if i < 0 || i >= len(labels) {
		return direction
	}
	return labels[i]
}
