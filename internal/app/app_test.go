package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/jot/internal/prefs"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfig_Overrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgPath := writeConfig(t, `
prefs_backend = "toml"
prefs_path = "/tmp/jot-prefs.toml"
log_level = "warn"
`)

	cfg, err := LoadConfig(Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PrefsPath != "/tmp/jot-prefs.toml" || cfg.LogLevel != "warn" {
		t.Fatalf("cfg = %+v, want file values", cfg)
	}

	cfg, err = LoadConfig(Options{ConfigPath: cfgPath, Backend: "sqlite"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := filepath.Join(home, ".config", "jot", "prefs.sqlite")
	if cfg.PrefsBackend != prefs.BackendSQLite || cfg.PrefsPath != want {
		t.Fatalf("cfg = %+v, want sqlite at %s", cfg, want)
	}

	override := filepath.Join(home, "p.toml")
	logFile := filepath.Join(home, "x.log")
	cfg, err = LoadConfig(Options{ConfigPath: cfgPath, PrefsPath: override, LogFile: logFile})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PrefsPath != override || cfg.LogFile != logFile {
		t.Fatalf("cfg = %+v, want overridden paths", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := LoadConfig(Options{ConfigPath: writeConfig(t, "prefs_backend = [")}); err == nil {
		t.Fatalf("LoadConfig with invalid TOML returned nil error")
	}
	_, err := Open(context.Background(), Options{
		ConfigPath: writeConfig(t, `log_level = "verbose"`),
		Backend:    prefs.BackendMemory,
	})
	if err == nil || !strings.Contains(err.Error(), "invalid log_level") {
		t.Fatalf("Open err = %v, want invalid log_level", err)
	}
	_, err = LoadConfig(Options{ConfigPath: writeConfig(t, ""), Backend: "redis"})
	if err == nil || !strings.Contains(err.Error(), "unknown prefs_backend") {
		t.Fatalf("err = %v, want unknown prefs_backend", err)
	}
}

func TestOpen_ThemeRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	ctx := context.Background()

	for _, backend := range []string{prefs.BackendTOML, prefs.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			opts := Options{
				ConfigPath: filepath.Join(home, "missing.toml"),
				Backend:    backend,
				PrefsPath:  filepath.Join(t.TempDir(), "prefs."+backend),
				LogFile:    filepath.Join(t.TempDir(), "jot.log"),
				Debug:      true,
			}

			env, err := Open(ctx, opts)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if !env.Theme.Value() {
				t.Fatalf("fresh theme = dark, want light")
			}
			env.Theme.Set(ctx, false)
			if err := env.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			env, err = Open(ctx, opts)
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer env.Close()
			if env.Theme.Value() {
				t.Fatalf("reopened theme = light, want dark")
			}

			data, err := os.ReadFile(opts.LogFile)
			if err != nil {
				t.Fatalf("ReadFile log: %v", err)
			}
			if !strings.Contains(string(data), "env ready") {
				t.Fatalf("log missing debug line:\n%s", data)
			}
		})
	}
}

func TestOpen_UnwritableLogFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	env, err := Open(context.Background(), Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		Backend:    prefs.BackendMemory,
		LogFile:    filepath.Join(blocker, "jot.log"),
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer env.Close()
	if env.Logger == nil {
		t.Fatalf("Logger is nil")
	}
	env.Logger.Info("dropped")
}
