package weather

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"noaa-forecast/internal/types"
	"noaa-forecast/internal/units"
)

// Labels are the display strings used while formatting
type Labels struct {
	Gust       string
	High       string
	Low        string
	TimeFormat string
	Days       []string
	Ordinals   []string
}

type formatter struct {
	converter units.Converter
	concise   bool
	labels    Labels
}

func formatDegrees(v *float64) string {
	if v == nil {
		return ""
	}
	return units.Format(units.Round(*v, 0)) + "°"
}

func (f formatter) hiLow(high, low *float64) HiLow {
	var hl HiLow
	if s := formatDegrees(high); s != "" {
		hl.High = f.label(f.labels.High) + s
	}
	if s := formatDegrees(low); s != "" {
		hl.Low = f.label(f.labels.Low) + s
	}
	return hl
}

func (f formatter) label(l string) string {
	if f.concise || l == "" {
		return ""
	}
	return l + " "
}

// precipitation reports snow in preference to rain. A missing or zero
// amount leaves the accumulation empty.
func (f formatter) precipitation(pop types.Number, rain, snow *float64) Precipitation {
	var p Precipitation
	if v, ok := pop.Float(); ok {
		p.Pop = units.Format(units.Round(v, 0)) + "%"
	}

	switch {
	case snow != nil && *snow > 0:
		p.AccumulationType = "snow"
		p.Accumulation = f.accumulation(*snow)
	case rain != nil && *rain > 0:
		p.AccumulationType = "rain"
		p.Accumulation = f.accumulation(*rain)
	}

	return p
}

func (f formatter) accumulation(v float64) string {
	return units.Format(units.Round(v, 2)) + " " + f.converter.AccumulationUnit()
}

// wind is the NWS speed text followed by the translated bearing, plus a gust
// annotation unless concise
func (f formatter) wind(speed, direction string, gust *float64) Wind {
	if f.converter.Metric() {
		speed = MetricWindText(speed)
	}

	var w Wind
	w.WindSpeed = strings.TrimSpace(speed + " " + types.Ordinal(direction, f.labels.Ordinals))

	if !f.concise && gust != nil && *gust > 0 {
		w.WindGust = fmt.Sprintf(" (%s %s %s)",
			f.labels.Gust, units.Format(units.Round(*gust, 0)), f.converter.SpeedUnit())
	}

	return w
}

var windNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// MetricWindText rewrites NWS wind text such as "5 to 10 mph" in km/h
func MetricWindText(s string) string {
	if !strings.Contains(s, units.UnitMphShort) {
		return s
	}
	s = windNumber.ReplaceAllStringFunc(s, func(n string) string {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return n
		}
		return units.FormatSpeed(v, false)
	})
	return strings.ReplaceAll(s, units.UnitMphShort, "km/h")
}
