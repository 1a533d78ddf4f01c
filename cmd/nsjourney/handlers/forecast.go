package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/imamik/nsjourney/internal/config"
	"github.com/imamik/nsjourney/internal/forecast"
)

// ForecastOptions holds the forecast command flags. Empty fields fall back
// to the configuration.
type ForecastOptions struct {
	City     string
	Country  string
	APIKey   string
	Units    string
	Limit    int
	CityTime bool
}

// Factory function variables for forecast - can be replaced in tests.
var (
	// newForecastClient creates the forecast API client.
	newForecastClient = func(apiKey string, opts ...forecast.Option) forecastFetcher {
		return forecast.NewClient(apiKey, opts...)
	}
)

// forecastFetcher is the part of forecast.Client the handler uses.
type forecastFetcher interface {
	Fetch(ctx context.Context, q forecast.Query) (*forecast.Response, error)
	Units() string
}

// Forecast fetches and prints the forecast for a city.
func Forecast(ctx context.Context, opts Options, fo ForecastOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := newLogger(opts.Verbose, "forecast")
	defer flushMetrics(cfg, log)

	apiKey := cfg.Forecast.APIKey
	if fo.APIKey != "" {
		apiKey = fo.APIKey
	}
	units := cfg.Forecast.Units
	if fo.Units != "" {
		units = fo.Units
	}
	if !config.ValidUnits[units] {
		return fmt.Errorf("invalid units %q (must be standard, metric or imperial)", units)
	}
	limit := cfg.Forecast.Limit
	if fo.Limit > 0 {
		limit = fo.Limit
	}

	client := newForecastClient(apiKey,
		forecast.WithBaseURL(cfg.Forecast.BaseURL),
		forecast.WithUnits(units),
		forecast.WithTimeout(cfg.Forecast.Timeout),
		forecast.WithLogger(log),
	)

	q := forecast.Query{City: fo.City, Country: fo.Country}
	resp, err := client.Fetch(ctx, q)
	if errors.Is(err, forecast.ErrCityTooShort) || errors.Is(err, forecast.ErrMissingAPIKey) {
		return err
	}
	if err != nil {
		return fmt.Errorf("could not load forecast: %w", err)
	}

	loc := time.Local
	if fo.CityTime {
		loc = resp.City.Location()
	}

	fmt.Println(forecast.LoadedMessage(q))
	fmt.Println()
	fmt.Println(forecast.RenderCurrent(resp, client.Units(), loc))
	fmt.Println(forecast.RenderCards(resp, limit, client.Units(), loc))
	return nil
}
