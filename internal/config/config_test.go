package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"noaa-forecast/internal/units"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()

	v := viper.New()
	v.SetConfigType("yaml")
	SetDefaults(v)
	if yaml != "" {
		if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
			t.Fatalf("failed to read config: %v", err)
		}
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(newViper(t, ""))
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Forecast.Units != units.Imperial {
		t.Errorf("Forecast.Units = %q, want imperial", cfg.Forecast.Units)
	}
	if cfg.Forecast.UpdateInterval != 10*time.Minute {
		t.Errorf("Forecast.UpdateInterval = %v, want 10m", cfg.Forecast.UpdateInterval)
	}
	if cfg.Forecast.HourlyForecastInterval != 3 || cfg.Forecast.MaxHourliesToShow != 3 || cfg.Forecast.MaxDailiesToShow != 3 {
		t.Errorf("unexpected window defaults: %+v", cfg.Forecast)
	}
	if !cfg.Forecast.Concise {
		t.Error("Forecast.Concise should default to true")
	}
	if len(cfg.Labels.Days) != 7 || len(cfg.Labels.Ordinals) != 16 {
		t.Errorf("labels days=%d ordinals=%d", len(cfg.Labels.Days), len(cfg.Labels.Ordinals))
	}
	if got := cfg.GetServerAddr(); got != ":8080" {
		t.Errorf("GetServerAddr() = %q, want :8080", got)
	}
}

func TestFromViper_File(t *testing.T) {
	yaml := `
forecast:
  latitude: 40.8932
  longitude: -74.0117
  units: Metric
  updateInterval: 5m
  maxDailiesToShow: 5
  includeTodayInDailyForecast: true
labels:
  gust: rafale
`
	cfg, err := FromViper(newViper(t, yaml))
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}

	if cfg.Forecast.Latitude != 40.8932 || cfg.Forecast.Longitude != -74.0117 {
		t.Errorf("coordinates = %v,%v", cfg.Forecast.Latitude, cfg.Forecast.Longitude)
	}
	if cfg.Forecast.Units != units.Metric {
		t.Errorf("Forecast.Units = %q, want metric", cfg.Forecast.Units)
	}
	if cfg.Forecast.UpdateInterval != 5*time.Minute {
		t.Errorf("Forecast.UpdateInterval = %v, want 5m", cfg.Forecast.UpdateInterval)
	}
	if cfg.Forecast.MaxDailiesToShow != 5 || !cfg.Forecast.IncludeTodayInDailyForecast {
		t.Errorf("daily options = %d/%v", cfg.Forecast.MaxDailiesToShow, cfg.Forecast.IncludeTodayInDailyForecast)
	}
	if cfg.Labels.Gust != "rafale" {
		t.Errorf("Labels.Gust = %q, want rafale", cfg.Labels.Gust)
	}
}

func TestFromViper_Sanitize(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "non-positive counts fall back",
			yaml: "forecast:\n  hourlyForecastInterval: 0\n  maxHourliesToShow: -2\n  maxDailiesToShow: 0\n",
			check: func(t *testing.T, cfg *Config) {
				f := cfg.Forecast
				if f.HourlyForecastInterval != 3 || f.MaxHourliesToShow != 3 || f.MaxDailiesToShow != 3 {
					t.Errorf("got %d/%d/%d, want 3/3/3", f.HourlyForecastInterval, f.MaxHourliesToShow, f.MaxDailiesToShow)
				}
			},
		},
		{
			name: "unknown layout",
			yaml: "forecast:\n  forecastLayout: grid\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Forecast.ForecastLayout != "tiled" {
					t.Errorf("ForecastLayout = %q, want tiled", cfg.Forecast.ForecastLayout)
				}
			},
		},
		{
			name: "unknown iconsets",
			yaml: "forecast:\n  iconset: 9z\n  mainIconset: 8q\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Forecast.Iconset != "1c" || cfg.Forecast.MainIconset != "1c" {
					t.Errorf("iconsets = %q/%q, want 1c/1c", cfg.Forecast.Iconset, cfg.Forecast.MainIconset)
				}
			},
		},
		{
			name: "monochrome leaves the main iconset colored",
			yaml: "forecast:\n  iconset: 3c\n  mainIconset: 5c\n  colored: false\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Forecast.Iconset != "3m" || cfg.Forecast.MainIconset != "5c" {
					t.Errorf("iconsets = %q/%q, want 3m/5c", cfg.Forecast.Iconset, cfg.Forecast.MainIconset)
				}
			},
		},
		{
			name: "monochrome with unknown main iconset",
			yaml: "forecast:\n  iconset: 4c\n  mainIconset: none\n  colored: false\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Forecast.Iconset != "4m" || cfg.Forecast.MainIconset != "4c" {
					t.Errorf("iconsets = %q/%q, want 4m/4c", cfg.Forecast.Iconset, cfg.Forecast.MainIconset)
				}
			},
		},
		{
			name: "wrong label count",
			yaml: "labels:\n  days: [a, b]\n",
			check: func(t *testing.T, cfg *Config) {
				if len(cfg.Labels.Days) != 7 {
					t.Errorf("len(Days) = %d, want 7", len(cfg.Labels.Days))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromViper(newViper(t, tt.yaml))
			if err != nil {
				t.Fatalf("FromViper() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "latitude out of range", yaml: "forecast:\n  latitude: 95\n"},
		{name: "unknown units", yaml: "forecast:\n  units: kelvin\n"},
		{name: "bad port", yaml: "server:\n  port: 70000\n"},
		{name: "bad gin mode", yaml: "server:\n  ginMode: loud\n"},
		{name: "missing user agent", yaml: "nws:\n  userAgent: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromViper(newViper(t, tt.yaml)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		debug bool
	}{
		{level: "debug", debug: true},
		{level: "info", debug: false},
		{level: "bogus", debug: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: "json"}}
			logger := cfg.NewLogger()
			if got := logger.Enabled(t.Context(), slog.LevelDebug); got != tt.debug {
				t.Errorf("debug enabled = %v, want %v", got, tt.debug)
			}
		})
	}
}
