package weather

import (
	"log/slog"
	"time"

	"noaa-forecast/internal/feelslike"
	"noaa-forecast/internal/grid"
	"noaa-forecast/internal/providers/nws"
	"noaa-forecast/internal/units"
)

// Enricher resolves grid values onto forecast periods
type Enricher struct {
	converter          units.Converter
	feelsLike          feelslike.Calculator
	hourlyAccumulation bool
	logger             *slog.Logger
}

func NewEnricher(system units.System, hourlyAccumulation bool, logger *slog.Logger) *Enricher {
	return &Enricher{
		converter:          units.NewConverter(system),
		feelsLike:          feelslike.NewCalculator(system),
		hourlyAccumulation: hourlyAccumulation,
		logger:             logger,
	}
}

// gridIndexes holds the indexes built once per refresh. Missing variables
// are nil and answer every lookup with "not found".
type gridIndexes struct {
	maxTemperature   *grid.Index
	minTemperature   *grid.Index
	snow             *grid.Index
	rain             *grid.Index
	windGust         *grid.Index
	relativeHumidity *grid.Index
}

func newGridIndexes(g grid.Grid) gridIndexes {
	return gridIndexes{
		maxTemperature:   g.Index(grid.VarMaxTemperature),
		minTemperature:   g.Index(grid.VarMinTemperature),
		snow:             g.Index(grid.VarIceAccumulation),
		rain:             g.Index(grid.VarQuantitativePrecipitation),
		windGust:         g.Index(grid.VarWindGust),
		relativeHumidity: g.Index(grid.VarRelativeHumidity),
	}
}

// EnrichDaily resolves the day's high, low, accumulations and peak gust
func (e *Enricher) EnrichDaily(periods []nws.Period, g grid.Grid) []Period {
	ix := newGridIndexes(g)

	out := make([]Period, len(periods))
	for i, p := range periods {
		period := e.base(p)

		period.MaxTemperature = e.lookup(ix.maxTemperature, period.Start, grid.DayTotal)
		period.MinTemperature = e.lookup(ix.minTemperature, period.Start, grid.DayTotal)
		period.SnowAccumulation = e.lookup(ix.snow, period.Start, grid.DayTotal)
		period.RainAccumulation = e.lookup(ix.rain, period.Start, grid.DayTotal)
		period.WindGust = e.lookup(ix.windGust, period.Start, grid.DayMax)

		out[i] = period
	}

	return out
}

// EnrichHourly resolves the hour's accumulations, gust and feels-like
func (e *Enricher) EnrichHourly(periods []nws.Period, g grid.Grid) []Period {
	ix := newGridIndexes(g)

	out := make([]Period, len(periods))
	for i, p := range periods {
		period := e.base(p)

		if e.hourlyAccumulation {
			period.SnowAccumulation = e.lookup(ix.snow, period.Start, grid.Point)
			period.RainAccumulation = e.lookup(ix.rain, period.Start, grid.Point)
		}
		period.WindGust = e.lookup(ix.windGust, period.Start, grid.Point)

		period.RelativeHumidity = p.RelativeHumidity.Ptr()
		if period.RelativeHumidity == nil {
			period.RelativeHumidity = e.lookup(ix.relativeHumidity, period.Start, grid.Point)
		}

		if period.Temperature != nil {
			fl := e.feelsLike.FeelsLike(*period.Temperature, period.WindGust, period.RelativeHumidity)
			period.FeelsLike = &fl
		}

		out[i] = period
	}

	return out
}

func (e *Enricher) base(p nws.Period) Period {
	period := Period{Period: p}

	start, err := time.Parse(time.RFC3339, p.StartTime)
	if err != nil {
		e.logger.Debug("skipping grid lookups for period",
			"start_time", p.StartTime,
			"error", err,
		)
	} else {
		period.Start = start
	}

	if v, ok := p.Temperature.Float(); ok {
		t := e.converter.ConvertIfNeeded(v, p.TemperatureUnit)
		period.Temperature = &t
	}

	return period
}

func (e *Enricher) lookup(ix *grid.Index, t time.Time, mode grid.Mode) *float64 {
	v, ok := ix.Lookup(t, mode)
	if !ok {
		return nil
	}
	v = e.converter.ConvertIfNeeded(v, ix.UOM())
	return &v
}
