package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidBackends lists the accepted store backends.
var ValidBackends = map[string]bool{
	BackendMemory: true,
	BackendFile:   true,
	BackendSQLite: true,
}

// ValidUnits lists the unit systems the forecast API understands.
var ValidUnits = map[string]bool{
	UnitsStandard: true,
	UnitsMetric:   true,
	UnitsImperial: true,
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.validateStore(); err != nil {
		return fmt.Errorf("store validation failed: %w", err)
	}

	if err := c.validateForecast(); err != nil {
		return fmt.Errorf("forecast validation failed: %w", err)
	}

	return nil
}

func (c *Config) validateStore() error {
	if !ValidBackends[c.Store.Backend] {
		return fmt.Errorf("invalid backend %q (must be one of %s)", c.Store.Backend, strings.Join(sortedKeys(ValidBackends), ", "))
	}
	if strings.TrimSpace(c.Store.Key) == "" {
		return fmt.Errorf("key is required")
	}
	return nil
}

func (c *Config) validateForecast() error {
	if !ValidUnits[c.Forecast.Units] {
		return fmt.Errorf("invalid units %q (must be one of %s)", c.Forecast.Units, strings.Join(sortedKeys(ValidUnits), ", "))
	}
	if c.Forecast.Limit < 1 || c.Forecast.Limit > maxForecastLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", maxForecastLimit, c.Forecast.Limit)
	}
	if c.Forecast.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Forecast.Timeout)
	}
	if c.Forecast.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
