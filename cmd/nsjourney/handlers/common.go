package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/imamik/nsjourney/internal/config"
	"github.com/imamik/nsjourney/internal/metrics"
	"github.com/imamik/nsjourney/internal/store"
)

// Options carries the global flags shared by every command.
type Options struct {
	ConfigPath   string
	StoreBackend string
	StorePath    string
	Verbose      bool
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile reads config from file, .env and environment.
	loadConfigFile = config.LoadWithoutValidation

	// openStore opens the configured draft store.
	openStore = store.Open

	// logOutput receives log lines.
	logOutput io.Writer = os.Stderr

	// isInteractiveTTY reports whether stdout is a terminal.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// writeMetrics dumps the metrics registry to a textfile.
	writeMetrics = metrics.WriteTextfile
)

// loadConfig loads the configuration and applies flag overrides on top.
func loadConfig(opts Options) (*config.Config, error) {
	cfg, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.StoreBackend != "" {
		cfg.Store.Backend = opts.StoreBackend
	}
	if opts.StorePath != "" {
		cfg.Store.Path = opts.StorePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// newLogger returns a logger writing key=value lines to logOutput, tagged
// with a fresh run id.
func newLogger(verbose bool, command string) logr.Logger {
	verbosity := 0
	if verbose {
		verbosity = 1
	}
	sink := func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(logOutput, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(logOutput, args)
	}
	return funcr.New(sink, funcr.Options{Verbosity: verbosity}).
		WithName(command).
		WithValues("run", uuid.NewString())
}

// session holds what a command needs once config is loaded.
type session struct {
	cfg *config.Config
	log logr.Logger
	kv  store.KV
}

// openSession loads config, builds the logger and opens the store.
func openSession(opts Options, command string) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return openSessionWith(cfg, opts, command)
}

func openSessionWith(cfg *config.Config, opts Options, command string) (*session, error) {
	log := newLogger(opts.Verbose, command)

	path := cfg.StorePath()
	kv, err := openStore(store.Config{Backend: cfg.Store.Backend, Path: path, Log: log.WithName("store")})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	log.V(1).Info("store opened", "backend", cfg.Store.Backend, "path", path, "key", cfg.Store.Key)

	return &session{cfg: cfg, log: log, kv: kv}, nil
}

// close closes the store and writes the metrics textfile when configured.
func (s *session) close() {
	if err := s.kv.Close(); err != nil {
		s.log.Error(err, "failed to close store")
	}
	flushMetrics(s.cfg, s.log)
}

func flushMetrics(cfg *config.Config, log logr.Logger) {
	if cfg.Metrics.Textfile == "" {
		return
	}
	if err := writeMetrics(cfg.Metrics.Textfile); err != nil {
		log.Error(err, "failed to write metrics", "path", cfg.Metrics.Textfile)
		return
	}
	log.V(1).Info("metrics written", "path", cfg.Metrics.Textfile)
}
