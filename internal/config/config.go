package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/jot/internal/logging"
	"github.com/five82/jot/internal/prefs"
)

// Config holds jot's runtime settings.
type Config struct {
	PrefsBackend string
	PrefsPath    string
	LogFile      string
	LogLevel     string
}

const (
	defaultConfigPath = "~/.config/jot/config.toml"
	defaultLogFile    = "~/.local/share/jot/jot.log"
	defaultLogLevel   = "info"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PrefsBackend: prefs.BackendTOML,
		PrefsPath:    mustExpand(prefs.DefaultPath(prefs.BackendTOML)),
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
	}
}

// Load locates and parses the jot config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		PrefsBackend string `toml:"prefs_backend"`
		PrefsPath    string `toml:"prefs_path"`
		LogFile      string `toml:"log_file"`
		LogLevel     string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		PrefsBackend: raw.PrefsBackend,
		PrefsPath:    raw.PrefsPath,
		LogFile:      raw.LogFile,
		LogLevel:     raw.LogLevel,
	}
	if err := cfg.Normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize trims values, fills defaults and expands paths. It fails on an
// unknown prefs backend.
func (c *Config) Normalize() error {
	c.PrefsBackend = strings.ToLower(strings.TrimSpace(c.PrefsBackend))
	if c.PrefsBackend == "" {
		c.PrefsBackend = prefs.BackendTOML
	}
	switch c.PrefsBackend {
	case prefs.BackendTOML, prefs.BackendSQLite, prefs.BackendMemory:
	default:
		return fmt.Errorf("unknown prefs_backend %q (want toml, sqlite or memory)", c.PrefsBackend)
	}

	c.PrefsPath = strings.TrimSpace(c.PrefsPath)
	if c.PrefsPath == "" && c.PrefsBackend != prefs.BackendMemory {
		c.PrefsPath = prefs.DefaultPath(c.PrefsBackend)
	}
	if c.PrefsPath != "" {
		c.PrefsPath = mustExpand(c.PrefsPath)
	}

	c.LogFile = strings.TrimSpace(c.LogFile)
	if c.LogFile == "" {
		c.LogFile = defaultLogFile
	}
	c.LogFile = mustExpand(c.LogFile)

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
