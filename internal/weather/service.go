package weather

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"noaa-forecast/internal/config"
	"noaa-forecast/internal/grid"
	"noaa-forecast/internal/providers/nws"
	"noaa-forecast/internal/timezone"
	"noaa-forecast/internal/types"
)

type ForecastProvider interface {
	// GetForecastData fetches the point, daily, hourly and grid documents for a location
	GetForecastData(ctx context.Context, coords types.Coords) (*nws.ForecastData, error)
}

type Service interface {
	// Refresh fetches the configured location and replaces the latest snapshot
	Refresh(ctx context.Context) (*Snapshot, error)
	// Latest returns the most recent snapshot, if any refresh has succeeded
	Latest() (*Snapshot, bool)
	// GetForecast normalizes the forecast for any location without touching the latest snapshot
	GetForecast(ctx context.Context, coords types.Coords) (*NormalizedForecast, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	opts             Options
	location         types.Coords
	instance         string
	now              func() time.Time
	logger           *slog.Logger

	mu     sync.RWMutex
	latest *Snapshot
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	client := nws.NewClient(nws.Options{
		BaseURL:           cfg.NWS.BaseURL,
		UserAgent:         cfg.NWS.UserAgent,
		RequestsPerSecond: cfg.NWS.RequestsPerSecond,
		Burst:             cfg.NWS.Burst,
		Timeout:           cfg.NWS.Timeout,
	}, logger)

	return NewWeatherServiceWithProvider(client, tzSvc, cfg, logger), nil
}

func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		opts:             NewOptions(cfg),
		location:         types.NewCoords(cfg.Forecast.Latitude, cfg.Forecast.Longitude),
		instance:         uuid.NewString(),
		now:              time.Now,
		logger:           logger.With("component", "weather-service"),
	}
}

// NewOptions reads the display options out of the loaded configuration
func NewOptions(cfg *config.Config) Options {
	f := cfg.Forecast
	return Options{
		Units:               f.Units,
		Concise:             f.Concise,
		ShowHourly:          f.ShowHourlyForecast,
		HourlyInterval:      f.HourlyForecastInterval,
		MaxHourlies:         f.MaxHourliesToShow,
		ShowDaily:           f.ShowDailyForecast,
		MaxDailies:          f.MaxDailiesToShow,
		IncludeToday:        f.IncludeTodayInDailyForecast,
		HourlyAccumulation:  f.HourlyAccumulation,
		Iconset:             f.Iconset,
		MainIconset:         f.MainIconset,
		UseAnimatedIcons:    f.UseAnimatedIcons,
		AnimateMainIconOnly: f.AnimateMainIconOnly,
		Layout:              f.ForecastLayout,
		Labels: Labels{
			Gust:       cfg.Labels.Gust,
			High:       cfg.Labels.High,
			Low:        cfg.Labels.Low,
			TimeFormat: cfg.Labels.TimeFormat,
			Days:       cfg.Labels.Days,
			Ordinals:   cfg.Labels.Ordinals,
		},
	}
}

func (s *weatherService) Refresh(ctx context.Context) (*Snapshot, error) {
	forecast, tz, err := s.fetch(ctx, s.location)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	token := now.UnixMilli()
	if s.latest != nil && token <= s.latest.Token {
		token = s.latest.Token + 1
	}

	s.latest = &Snapshot{
		Token:       token,
		RefreshedAt: now,
		Timezone:    tz,
		Forecast:    forecast,
	}

	s.logger.Info("forecast refreshed",
		"token", token,
		"hourly", len(forecast.Hourly),
		"daily", len(forecast.Daily),
	)

	return s.latest, nil
}

func (s *weatherService) Latest() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.latest != nil
}

func (s *weatherService) GetForecast(ctx context.Context, coords types.Coords) (*NormalizedForecast, error) {
	forecast, _, err := s.fetch(ctx, coords)
	return forecast, err
}

func (s *weatherService) fetch(ctx context.Context, coords types.Coords) (*NormalizedForecast, string, error) {
	data, err := s.forecastProvider.GetForecastData(ctx, coords)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, "", fmt.Errorf("failed to get forecast: %w", err)
	}

	location, tz := s.resolveLocation(data.Point, coords)

	forecast, err := Normalize(data, s.opts, NewIconIDs(s.instance), location, s.logger)
	if err != nil {
		return nil, "", err
	}

	return forecast, tz, nil
}

// resolveLocation picks the display zone from the point document, then a
// coordinate lookup. A nil location leaves times in their own offsets.
func (s *weatherService) resolveLocation(point *nws.PointAPIResponse, coords types.Coords) (*time.Location, string) {
	if point != nil && point.Properties.TimeZone != "" {
		loc, err := time.LoadLocation(point.Properties.TimeZone)
		if err == nil {
			return loc, loc.String()
		}
		s.logger.Warn("unknown timezone in point response",
			"timezone", point.Properties.TimeZone,
			"error", err,
		)
	}

	if s.timezoneService != nil {
		loc, err := s.timezoneService.GetLocation(coords.Latitude, coords.Longitude)
		if err == nil {
			return loc, loc.String()
		}
		s.logger.Debug("timezone lookup failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
	}

	return nil, ""
}

// Normalize turns fetched NWS documents into a display forecast. A missing
// or unreadable grid is logged and the periods keep their base fields.
func Normalize(data *nws.ForecastData, opts Options, icons *IconIDs, location *time.Location, logger *slog.Logger) (*NormalizedForecast, error) {
	if data == nil || data.Daily == nil || len(data.Daily.Properties.Periods) == 0 {
		return nil, ErrNoDailyPeriods
	}
	if data.Hourly == nil || len(data.Hourly.Properties.Periods) == 0 {
		return nil, ErrNoHourlyPeriods
	}

	var g grid.Grid
	if data.Grid == nil {
		logger.Warn("grid data unavailable, forecast will not include grid values")
	} else {
		parsed, err := grid.Parse(data.Grid.Properties)
		if err != nil {
			logger.Warn("failed to parse grid data", "error", err)
		} else {
			g = parsed
		}
	}

	enricher := NewEnricher(opts.Units, opts.HourlyAccumulation, logger)
	daily := enricher.EnrichDaily(data.Daily.Properties.Periods, g)
	hourly := enricher.EnrichHourly(data.Hourly.Properties.Periods, g)

	return NewSelector(opts, icons, location).Select(daily, hourly)
}
