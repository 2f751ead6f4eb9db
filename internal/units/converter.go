package units

// Converter converts source values into a target display system
type Converter struct {
	System System
}

func NewConverter(system System) Converter {
	return Converter{System: system}
}

// Metric reports whether the target system is metric
func (c Converter) Metric() bool {
	return c.System == Metric
}

// ConvertIfNeeded converts v from the unit named by uom into the target
// system. Values already in the target system, and values with a unit tag
// that is not a temperature, distance or speed, are returned unchanged.
func (c Converter) ConvertIfNeeded(v float64, uom string) float64 {
	switch uom {
	case UnitDegC, UnitCelsius:
		if !c.Metric() {
			return Temperature(v, false)
		}
	case UnitDegF, UnitFahrenheit:
		if c.Metric() {
			return Temperature(v, true)
		}
	case UnitInches:
		if c.Metric() {
			return Distance(v, false)
		}
	case UnitMm:
		if !c.Metric() {
			return Distance(v, true)
		}
	case UnitKph:
		if !c.Metric() {
			return Speed(v, true)
		}
	case UnitMph, UnitMphShort:
		if c.Metric() {
			return Speed(v, false)
		}
	}
	return v
}

// AccumulationUnit is the suffix shown after rain and snow amounts
func (c Converter) AccumulationUnit() string {
	if c.Metric() {
		return "mm"
	}
	return "in"
}

// SpeedUnit is the suffix shown after wind speeds
func (c Converter) SpeedUnit() string {
	if c.Metric() {
		return "km/h"
	}
	return "mph"
}
