package prefs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// KV is an opaque string key-value store used for preferences.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Backend is a KV that holds resources until closed.
type Backend interface {
	KV
	Close() error
}

// Backend names accepted by Open.
const (
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	defaultTOMLPath   = "~/.config/jot/prefs.toml"
	defaultSQLitePath = "~/.config/jot/prefs.sqlite"
)

// DefaultPath returns the default preferences path for a backend.
func DefaultPath(backend string) string {
	if normalizeBackend(backend) == BackendSQLite {
		return defaultSQLitePath
	}
	return defaultTOMLPath
}

// Open returns the named backend rooted at path. An empty backend means TOML
// and an empty path means the backend's default location.
func Open(ctx context.Context, backend, path string) (Backend, error) {
	switch normalizeBackend(backend) {
	case BackendTOML:
		return NewFile(path), nil
	case BackendSQLite:
		return OpenSQLite(ctx, path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown prefs backend %q", backend)
	}
}

func normalizeBackend(backend string) string {
	b := strings.ToLower(strings.TrimSpace(backend))
	if b == "" {
		return BackendTOML
	}
	return b
}

// Memory is an in-process KV. Values are lost on exit.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }

func resolvePath(path, fallback string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(fallback)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
