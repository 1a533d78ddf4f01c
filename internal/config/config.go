package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultConfigFilename is the config file looked up under the user config dir.
const DefaultConfigFilename = "config.yaml"

// AppDir is the directory name used under the XDG config and data homes.
const AppDir = "nsjourney"

// Store backend names. They mirror the names accepted by internal/store.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Forecast unit systems accepted by the OpenWeather API.
const (
	UnitsStandard = "standard"
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

const (
	defaultStoreKey        = "ns_journey_draft_v1"
	defaultForecastBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultForecastLimit   = 12
	defaultForecastTimeout = 10 * time.Second

	maxForecastLimit = 40
)

// Config is the complete nsjourney configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Forecast ForecastConfig `yaml:"forecast"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// StoreConfig selects where the journey draft is persisted.
type StoreConfig struct {
	// Backend is one of memory, file or sqlite.
	Backend string `yaml:"backend"`

	// Path is the file or database location. Empty means the default
	// location for the backend.
	Path string `yaml:"path,omitempty"`

	// Key is the storage key of the draft snapshot.
	Key string `yaml:"key"`
}

// ForecastConfig configures the OpenWeather forecast client.
type ForecastConfig struct {
	APIKey  string        `yaml:"api_key,omitempty"`
	Units   string        `yaml:"units"`
	BaseURL string        `yaml:"base_url"`
	Limit   int           `yaml:"limit"`
	Timeout time.Duration `yaml:"timeout"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is written on exit when set.
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Key:     defaultStoreKey,
		},
		Forecast: ForecastConfig{
			Units:   UnitsMetric,
			BaseURL: defaultForecastBaseURL,
			Limit:   defaultForecastLimit,
			Timeout: defaultForecastTimeout,
		},
	}
}

// StorePath returns the configured store path, or the default location
// for the backend. Memory stores have no path.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	switch c.Store.Backend {
	case BackendFile:
		return filepath.Join(dataHome(), AppDir, "drafts.json")
	case BackendSQLite:
		return filepath.Join(dataHome(), AppDir, "drafts.db")
	default:
		return ""
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/nsjourney/config.yaml.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFilename
	}
	return filepath.Join(dir, AppDir, DefaultConfigFilename)
}

func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}
