// Package feelslike derives apparent temperature from temperature, wind and
// relative humidity using the NWS wind chill and heat index formulas.
package feelslike

import (
	"math"

	"noaa-forecast/internal/units"
)

const (
	DefaultWindMph  = 0
	DefaultHumidity = 50
)

// WindChill applies the NWS wind chill formula. temp is in °F, wind in mph.
func WindChill(temp, wind float64) float64 {
	v := math.Pow(wind, 0.16)
	return 35.74 + (0.6215 * temp) - (35.75 * v) + (0.4275 * temp * v)
}

// HeatIndex applies the Rothfusz regression. temp is in °F, humidity in percent.
func HeatIndex(temp, humidity float64) float64 {
	c1 := -42.379
	c2 := 2.04901523
	c3 := 10.14333127
	c4 := 0.22475541
	c5 := 0.00683783
	c6 := 0.05481717
	c7 := 0.00122874
	c8 := 0.00085282
	c9 := 0.00000199

	t := temp
	r := humidity
	return c1 + (c2 * t) + (c3 * r) - (c4 * t * r) - (c5 * t * t) - (c6 * r * r) +
		(c7 * t * t * r) + (c8 * t * r * r) - (c9 * t * t * r * r)
}

// Fahrenheit returns the feels-like temperature in °F. Wind chill applies at or
// below 50°F with at least 3 mph of wind, heat index at or above 80°F with at
// least 40% humidity, and otherwise the temperature is returned as is.
func Fahrenheit(temp, wind, humidity float64) float64 {
	switch {
	case temp <= 50 && wind >= 3:
		return WindChill(temp, wind)
	case temp >= 80 && humidity >= 40:
		return HeatIndex(temp, humidity)
	default:
		return temp
	}
}

// Calculator works in a display unit system: inputs arrive in that system and
// the result goes back out in it.
type Calculator struct {
	converter units.Converter
}

func NewCalculator(system units.System) Calculator {
	return Calculator{converter: units.NewConverter(system)}
}

// FeelsLike returns the apparent temperature rounded to one decimal. A missing
// wind reads as calm and a missing humidity as 50%; a non-numeric temperature
// is returned unchanged.
func (c Calculator) FeelsLike(temp float64, wind, humidity *float64) float64 {
	if math.IsNaN(temp) || math.IsInf(temp, 0) {
		return temp
	}

	windMph := float64(DefaultWindMph)
	if wind != nil && !math.IsNaN(*wind) {
		windMph = *wind
	}
	rh := float64(DefaultHumidity)
	if humidity != nil && !math.IsNaN(*humidity) {
		rh = *humidity
	}

	tempF := temp
	if c.converter.Metric() {
		tempF = temp*9/5 + 32
		windMph = windMph / units.MphToKph
	}

	feels := Fahrenheit(tempF, windMph, rh)

	if c.converter.Metric() {
		feels = (feels - 32) * 5 / 9
	}
	return units.Round(feels, 1)
}
