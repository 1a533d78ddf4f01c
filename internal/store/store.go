package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Backends lists every supported backend name.
var Backends = []string{BackendMemory, BackendFile, BackendSQLite}

// KV is a string-keyed store that owns resources until closed.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}

// Config selects and locates a backend.
type Config struct {
	Backend string
	Path    string
	// Log receives backend diagnostics. The zero value discards them.
	Log logr.Logger
}

// Open returns the backend named by cfg.Backend.
func Open(cfg Config) (KV, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		if cfg.Path == "" {
			return nil, fmt.Errorf("file store requires a path")
		}
		return NewFile(cfg.Path, WithFileLogger(cfg.Log)), nil
	case BackendSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite store requires a path")
		}
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected one of %v)", cfg.Backend, Backends)
	}
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}
