package config

import (
	"strconv"
	"time"
)

// Environment variables read by ApplyEnv.
const (
	EnvStoreBackend    = "NSJOURNEY_STORE_BACKEND"
	EnvStorePath       = "NSJOURNEY_STORE_PATH"
	EnvStoreKey        = "NSJOURNEY_STORE_KEY"
	EnvMetricsTextfile = "NSJOURNEY_METRICS_TEXTFILE"
	EnvForecastTimeout = "NSJOURNEY_FORECAST_TIMEOUT"
	EnvForecastLimit   = "NSJOURNEY_FORECAST_LIMIT"
	EnvOpenWeatherKey  = "OPENWEATHER_API_KEY"
	EnvOpenWeatherUnit = "OPENWEATHER_UNITS"
)

// ApplyEnv overrides fields from environment variables looked up with
// getenv. Unset or empty variables leave the field alone, as do values
// that fail to parse.
func (c *Config) ApplyEnv(getenv func(string) string) {
	setString(&c.Store.Backend, getenv(EnvStoreBackend))
	setString(&c.Store.Path, getenv(EnvStorePath))
	setString(&c.Store.Key, getenv(EnvStoreKey))
	setString(&c.Metrics.Textfile, getenv(EnvMetricsTextfile))
	setString(&c.Forecast.APIKey, getenv(EnvOpenWeatherKey))
	setString(&c.Forecast.Units, getenv(EnvOpenWeatherUnit))
	c.Forecast.Timeout = parseDuration(getenv(EnvForecastTimeout), c.Forecast.Timeout)
	c.Forecast.Limit = parseInt(getenv(EnvForecastLimit), c.Forecast.Limit)
}

func setString(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}

// parseDuration parses val, returning defaultVal when val is empty or invalid.
func parseDuration(val string, defaultVal time.Duration) time.Duration {
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses val, returning defaultVal when val is empty or invalid.
func parseInt(val string, defaultVal int) int {
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
