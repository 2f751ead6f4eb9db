// Package units converts NWS measurements between the imperial and metric
// display systems. Every conversion carries its own rounding contract so that
// values leaving this package are ready to display.
package units

import (
	"math"
	"strconv"
)

const (
	InchesToMm = 25.4
	MphToKph   = 1.609344
)

// System is a display unit system
type System string

const (
	Imperial System = "imperial"
	Metric   System = "metric"
)

// Unit tags seen in NWS documents. Forecast periods use the bare letters,
// gridpoint variables use the wmoUnit vocabulary.
const (
	UnitDegC       = "wmoUnit:degC"
	UnitDegF       = "wmoUnit:degF"
	UnitCelsius    = "C"
	UnitFahrenheit = "F"
	UnitMm         = "wmoUnit:mm"
	UnitInches     = "wmoUnit:in"
	UnitKph        = "wmoUnit:km_h-1"
	UnitMph        = "wmoUnit:mph"
	UnitMphShort   = "mph"
	UnitPercent    = "wmoUnit:percent"
)

// Round rounds v to the given number of decimals with halves going up, which
// is how the display layer has always rounded (-2.5 becomes -2).
func Round(v float64, decimals int) float64 {
	if !finite(v) {
		return v
	}
	p := math.Pow(10, float64(decimals))
	return math.Floor(v*p+0.5) / p
}

// Temperature converts Fahrenheit to Celsius (one decimal) when toCelsius is
// set, otherwise Celsius to Fahrenheit (whole degrees). NaN and infinities are
// returned unchanged.
func Temperature(v float64, toCelsius bool) float64 {
	if !finite(v) {
		return v
	}
	if toCelsius {
		return Round((v-32)*5/9, 1)
	}
	return Round(v*9/5+32, 0)
}

// Distance converts millimeters to inches when toImperial is set, otherwise
// inches to millimeters, rounded to two decimals.
func Distance(v float64, toImperial bool) float64 {
	if !finite(v) {
		return v
	}
	if toImperial {
		return Round(v/InchesToMm, 2)
	}
	return Round(v*InchesToMm, 2)
}

// Speed converts km/h to mph when toImperial is set, otherwise mph to km/h,
// rounded to whole units.
func Speed(v float64, toImperial bool) float64 {
	if !finite(v) {
		return v
	}
	if toImperial {
		return Round(v/MphToKph, 0)
	}
	return Round(v*MphToKph, 0)
}

// FormatDistance is Distance rendered for concatenation with a unit suffix
func FormatDistance(v float64, toImperial bool) string {
	return Format(Distance(v, toImperial))
}

// FormatSpeed is Speed rendered for concatenation with a unit suffix
func FormatSpeed(v float64, toImperial bool) string {
	return Format(Speed(v, toImperial))
}

// Format renders v without trailing zeros ("0.5", "62", "-3.2")
func Format(v float64) string {
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
