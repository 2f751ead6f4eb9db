package weather

import (
	"errors"
	"time"

	"noaa-forecast/internal/units"
)

var (
	ErrNoDailyPeriods  = errors.New("forecast has no daily periods")
	ErrNoHourlyPeriods = errors.New("forecast has no hourly periods")
)

// Options are the display settings read by the selector
type Options struct {
	Units   units.System
	Concise bool

	ShowHourly     bool
	HourlyInterval int
	MaxHourlies    int

	ShowDaily    bool
	MaxDailies   int
	IncludeToday bool

	HourlyAccumulation bool

	Iconset             string
	MainIconset         string
	UseAnimatedIcons    bool
	AnimateMainIconOnly bool
	Layout              string

	Labels Labels
}

// HourlyIndices returns interval, 2*interval, ... up to count entries that
// exist in a sequence of length n
func HourlyIndices(n, interval, count int) []int {
	if interval <= 0 || count <= 0 {
		return nil
	}

	var indices []int
	for i := interval; i < n && len(indices) < count; i += interval {
		indices = append(indices, i)
	}
	return indices
}

// DailyIndices steps over the alternating day/night periods. With
// includeToday it takes 0, 2, ... 2*(count-1), otherwise 1, 3, ... 2*count.
func DailyIndices(n, count int, includeToday bool) []int {
	if count <= 0 {
		return nil
	}

	start, last := 1, 2*count
	if includeToday {
		start, last = 0, 2*(count-1)
	}

	var indices []int
	for i := start; i <= last && i < n; i += 2 {
		indices = append(indices, i)
	}
	return indices
}

// Selector picks the displayed periods out of enriched forecasts and
// formats them
type Selector struct {
	opts     Options
	format   formatter
	icons    *IconIDs
	location *time.Location
}

// NewSelector returns a selector for one refresh. A nil location keeps each
// period in its own offset.
func NewSelector(opts Options, icons *IconIDs, location *time.Location) *Selector {
	return &Selector{
		opts: opts,
		format: formatter{
			converter: units.NewConverter(opts.Units),
			concise:   opts.Concise,
			labels:    opts.Labels,
		},
		icons:    icons,
		location: location,
	}
}

// Select builds the normalized forecast. Current conditions need both the
// first hourly and first daily period.
func (s *Selector) Select(daily, hourly []Period) (*NormalizedForecast, error) {
	if len(daily) == 0 {
		return nil, ErrNoDailyPeriods
	}
	if len(hourly) == 0 {
		return nil, ErrNoHourlyPeriods
	}

	summary := daily[0].DetailedForecast
	if s.opts.Concise {
		summary = daily[0].ShortForecast
	}

	forecast := &NormalizedForecast{
		Currently: s.currently(hourly[0], daily[0]),
		Summary:   summary,
		Hourly:    []DisplayPeriod{},
		Daily:     []DisplayPeriod{},
		Icons:     inlineIcons(s.opts.Iconset),
		Layout:    s.opts.Layout,
	}

	if s.opts.ShowHourly {
		for _, i := range HourlyIndices(len(hourly), s.opts.HourlyInterval, s.opts.MaxHourlies) {
			forecast.Hourly = append(forecast.Hourly, s.hourly(hourly[i]))
		}
	}

	if s.opts.ShowDaily {
		for _, i := range DailyIndices(len(daily), s.opts.MaxDailies, s.opts.IncludeToday) {
			forecast.Daily = append(forecast.Daily, s.daily(daily[i]))
		}
	}

	return forecast, nil
}

func (s *Selector) currently(now, today Period) Currently {
	name := IconName(now.Icon)

	c := Currently{
		Temperature:      formatDegrees(now.Temperature),
		FeelsLike:        formatDegrees(now.FeelsLike),
		AnimatedIconName: name,
		IconPath:         IconPath(s.opts.MainIconset, name),
		TempRange:        s.format.hiLow(today.MaxTemperature, today.MinTemperature),
		Precipitation:    s.format.precipitation(now.ProbabilityOfPrecipitation, now.RainAccumulation, now.SnowAccumulation),
		Wind:             s.format.wind(now.WindSpeed, now.WindDirection, now.WindGust),
	}
	if s.opts.UseAnimatedIcons {
		c.AnimatedIconID = s.icons.Next()
	}

	return c
}

func (s *Selector) hourly(p Period) DisplayPeriod {
	d := s.tile(p)
	if !p.Start.IsZero() {
		d.Time = s.local(p.Start).Format(s.opts.Labels.TimeFormat)
	}
	d.Temperature = formatDegrees(p.Temperature)
	return d
}

func (s *Selector) daily(p Period) DisplayPeriod {
	d := s.tile(p)
	if !p.Start.IsZero() {
		d.Day = s.dayLabel(s.local(p.Start).Weekday())
	}
	hl := s.format.hiLow(p.MaxTemperature, p.MinTemperature)
	d.TempRange = &hl
	return d
}

func (s *Selector) tile(p Period) DisplayPeriod {
	name := IconName(p.Icon)

	d := DisplayPeriod{
		IconPath:      IconPath(s.opts.Iconset, name),
		Precipitation: s.format.precipitation(p.ProbabilityOfPrecipitation, p.RainAccumulation, p.SnowAccumulation),
		Wind:          s.format.wind(p.WindSpeed, p.WindDirection, p.WindGust),
	}
	if s.opts.UseAnimatedIcons && !s.opts.AnimateMainIconOnly {
		d.AnimatedIconID = s.icons.Next()
		d.AnimatedIconName = name
	}

	return d
}

func (s *Selector) local(t time.Time) time.Time {
	if s.location == nil {
		return t
	}
	return t.In(s.location)
}

func (s *Selector) dayLabel(day time.Weekday) string {
	if int(day) < len(s.opts.Labels.Days) {
		return s.opts.Labels.Days[day]
	}
	return day.String()[:3]
}
