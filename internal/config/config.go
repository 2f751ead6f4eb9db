package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"noaa-forecast/internal/units"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	NWS      NWSConfig
	Forecast ForecastConfig
	Labels   LabelConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int    `validate:"min=1,max=65535"`
	GinMode string `validate:"oneof=debug release test"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// NWSConfig holds settings for the api.weather.gov client
type NWSConfig struct {
	BaseURL           string        `validate:"required,url"`
	UserAgent         string        `validate:"required"`
	RequestsPerSecond float64       `validate:"gt=0"`
	Burst             int           `validate:"min=1"`
	Timeout           time.Duration `validate:"gt=0"`
}

// ForecastConfig holds the location and display options of the forecast
type ForecastConfig struct {
	Latitude  float64 `validate:"min=-90,max=90"`
	Longitude float64 `validate:"min=-180,max=180"`

	Units          units.System  `validate:"oneof=imperial metric"`
	UpdateInterval time.Duration `validate:"gt=0"`
	RequestDelay   time.Duration `validate:"min=0"`

	Concise bool

	ShowHourlyForecast     bool
	HourlyForecastInterval int `validate:"min=1"`
	MaxHourliesToShow      int `validate:"min=1"`

	ShowDailyForecast           bool
	MaxDailiesToShow            int `validate:"min=1"`
	IncludeTodayInDailyForecast bool

	// HourlyAccumulation wires rain and snow amounts into hourly periods
	HourlyAccumulation bool

	Iconset             string `validate:"required"`
	MainIconset         string `validate:"required"`
	Colored             bool
	UseAnimatedIcons    bool
	AnimateMainIconOnly bool
	ForecastLayout      string `validate:"oneof=tiled table"`
}

// LabelConfig holds the display strings used while formatting
type LabelConfig struct {
	Gust       string
	High       string
	Low        string
	TimeFormat string   `validate:"required"`
	Days       []string `validate:"len=7"`
	Ordinals   []string `validate:"len=16"`
}

var (
	defaultDays     = []string{"Sun", "Mon", "Tue", "Wed", "Thur", "Fri", "Sat"}
	defaultOrdinals = []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
)

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.noaa-forecast")

	SetDefaults(v)

	// Read from environment variables, e.g. NOAA_FORECAST_FORECAST_LATITUDE
	v.SetEnvPrefix("NOAA_FORECAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper unmarshals, sanitizes and validates a configured viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.sanitize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SetDefaults registers every default on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("nws.baseurl", "https://api.weather.gov")
	v.SetDefault("nws.useragent", "noaa-forecast (contact@example.com)")
	v.SetDefault("nws.requestspersecond", 1.0)
	v.SetDefault("nws.burst", 3)
	v.SetDefault("nws.timeout", "30s")

	v.SetDefault("forecast.latitude", 0.0)
	v.SetDefault("forecast.longitude", 0.0)
	v.SetDefault("forecast.units", string(units.Imperial))
	v.SetDefault("forecast.updateinterval", "10m")
	v.SetDefault("forecast.requestdelay", "0s")
	v.SetDefault("forecast.concise", true)
	v.SetDefault("forecast.showhourlyforecast", true)
	v.SetDefault("forecast.hourlyforecastinterval", 3)
	v.SetDefault("forecast.maxhourliestoshow", 3)
	v.SetDefault("forecast.showdailyforecast", true)
	v.SetDefault("forecast.maxdailiestoshow", 3)
	v.SetDefault("forecast.includetodayindailyforecast", false)
	v.SetDefault("forecast.hourlyaccumulation", true)
	v.SetDefault("forecast.iconset", "1c")
	v.SetDefault("forecast.mainiconset", "1c")
	v.SetDefault("forecast.colored", true)
	v.SetDefault("forecast.useanimatedicons", true)
	v.SetDefault("forecast.animatemainicononly", true)
	v.SetDefault("forecast.forecastlayout", "tiled")

	v.SetDefault("labels.gust", "max")
	v.SetDefault("labels.high", "H")
	v.SetDefault("labels.low", "L")
	v.SetDefault("labels.timeformat", "3 PM")
	v.SetDefault("labels.days", defaultDays)
	v.SetDefault("labels.ordinals", defaultOrdinals)
}

// sanitize replaces unusable display values with their defaults instead of
// refusing to start
func (c *Config) sanitize() {
	f := &c.Forecast

	if f.HourlyForecastInterval <= 0 {
		f.HourlyForecastInterval = 3
	}
	if f.MaxHourliesToShow <= 0 {
		f.MaxHourliesToShow = 3
	}
	if f.MaxDailiesToShow <= 0 {
		f.MaxDailiesToShow = 3
	}
	if f.UpdateInterval <= 0 {
		f.UpdateInterval = 10 * time.Minute
	}
	if f.RequestDelay < 0 {
		f.RequestDelay = 0
	}

	f.Units = units.System(strings.ToLower(string(f.Units)))
	f.ForecastLayout = strings.ToLower(f.ForecastLayout)
	if f.ForecastLayout != "tiled" && f.ForecastLayout != "table" {
		f.ForecastLayout = "tiled"
	}

	if _, ok := Iconsets[f.Iconset]; !ok {
		f.Iconset = "1c"
	}
	if _, ok := Iconsets[f.MainIconset]; !ok {
		f.MainIconset = f.Iconset
	}
	// monochrome variants swap the trailing c for an m; the main iconset keeps its colors
	if !f.Colored {
		f.Iconset = monochrome(f.Iconset)
	}

	if len(c.Labels.Days) != 7 {
		c.Labels.Days = defaultDays
	}
	if len(c.Labels.Ordinals) != 16 {
		c.Labels.Ordinals = defaultOrdinals
	}
}

func monochrome(iconset string) string {
	mono := strings.Replace(iconset, "c", "m", 1)
	if _, ok := Iconsets[mono]; ok {
		return mono
	}
	return iconset
}

// Validate checks the struct tags on every section
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
