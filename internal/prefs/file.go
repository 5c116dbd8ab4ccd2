package prefs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// File stores preferences as a flat TOML table of strings.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a File backed by path. An empty path uses
// ~/.config/jot/prefs.toml. Nothing is read until the first Get or Set.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the resolved file path, or the configured one if it cannot be
// resolved.
func (f *File) Path() string {
	resolved, err := resolvePath(f.path, defaultTOMLPath)
	if err != nil {
		return f.path
	}
	return resolved
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set rewrites the file with key updated. A file that no longer parses is
// replaced.
func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		values = map[string]string{}
	}
	values[key] = value
	return f.write(values)
}

func (f *File) Close() error { return nil }

func (f *File) read() (map[string]string, error) {
	resolved, err := resolvePath(f.path, defaultTOMLPath)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("open prefs: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}

	values := map[string]string{}
	if err := toml.Unmarshal(bytes, &values); err != nil {
		return nil, fmt.Errorf("parse prefs: %w", err)
	}
	return values, nil
}

func (f *File) write(values map[string]string) error {
	resolved, err := resolvePath(f.path, defaultTOMLPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
