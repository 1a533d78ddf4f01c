package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-logr/logr"
)

// errCorruptFile marks a store file whose contents are not a JSON object.
var errCorruptFile = errors.New("store file is not valid JSON")

// File keeps every key in one JSON object on disk. Each write replaces the
// file through a temporary file and a rename. A file that does not parse
// fails reads but is replaced by the next Set or Remove.
type File struct {
	path string
	log  logr.Logger
	mu   sync.Mutex
}

// FileOption configures a File.
type FileOption func(*File)

// WithFileLogger sets the logger used to report a replaced corrupt file.
func WithFileLogger(log logr.Logger) FileOption {
	return func(f *File) {
		f.log = log
	}
}

// NewFile returns a File store at path. The file is created on first write.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{path: path, log: logr.Discard()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Get implements KV.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

// Set implements KV.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.readForWrite()
	if err != nil {
		return err
	}
	data[key] = value
	return f.write(data)
}

// Remove implements KV. A corrupt file is rewritten empty.
func (f *File) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if errors.Is(err, errCorruptFile) {
		f.log.Info("replacing corrupt store file", "path", f.path, "reason", err.Error())
		return f.write(map[string]string{})
	}
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return f.write(data)
}

// Close implements KV.
func (f *File) Close() error { return nil }

// read loads the file; a missing file reads as empty.
func (f *File) read() (map[string]string, error) {
	data := make(map[string]string)

	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w: %w", f.path, errCorruptFile, err)
	}
	if data == nil {
		data = make(map[string]string)
	}
	return data, nil
}

// readForWrite is read for Set. A corrupt file is dropped so the write
// replaces it.
func (f *File) readForWrite() (map[string]string, error) {
	data, err := f.read()
	if errors.Is(err, errCorruptFile) {
		f.log.Info("replacing corrupt store file", "path", f.path, "reason", err.Error())
		return make(map[string]string), nil
	}
	return data, err
}

func (f *File) write(data map[string]string) error {
	if err := ensureDir(f.path); err != nil {
		return err
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
