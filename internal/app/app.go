package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/five82/jot/internal/config"
	"github.com/five82/jot/internal/logging"
	"github.com/five82/jot/internal/prefs"
	"github.com/five82/jot/internal/state"
	"github.com/five82/jot/internal/ui"
)

// Options configure the jot application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string
	Backend    string
	LogFile    string
	Debug      bool
}

// Env holds the resources shared by the TUI and the CLI subcommands.
type Env struct {
	Config config.Config
	Logger *log.Logger
	Prefs  prefs.Backend
	Theme  *prefs.Flag

	logFile *logging.File
}

// Open loads configuration, starts logging and opens the preferences backend.
func Open(ctx context.Context, opts Options) (*Env, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	env := &Env{Config: cfg, Logger: logging.Discard()}
	lf, err := logging.Open(logging.Options{
		Path:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Debug:  opts.Debug,
		Prefix: "jot",
	})
	if err == nil {
		env.logFile = lf
		env.Logger = lf.Logger
	}

	kv, err := prefs.Open(ctx, cfg.PrefsBackend, cfg.PrefsPath)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("open prefs: %w", err)
	}
	env.Prefs = kv
	env.Theme = prefs.NewFlag(ctx, kv, prefs.ThemeLightKey, env.Logger)

	env.Logger.Debug("env ready",
		"prefs_backend", cfg.PrefsBackend,
		"prefs_path", cfg.PrefsPath,
		"light", env.Theme.Value())
	return env, nil
}

// Close releases the preferences backend and the log file.
func (e *Env) Close() error {
	var errs []error
	if e.Prefs != nil {
		if err := e.Prefs.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close prefs: %w", err))
		}
	}
	if e.logFile != nil {
		if err := e.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close log: %w", err))
		}
	}
	return errors.Join(errs...)
}

// LoadConfig reads the config file and applies option overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if b := strings.TrimSpace(opts.Backend); b != "" && !strings.EqualFold(b, cfg.PrefsBackend) {
		cfg.PrefsBackend = b
		// The configured path belongs to the other backend.
		cfg.PrefsPath = ""
	}
	if p := strings.TrimSpace(opts.PrefsPath); p != "" {
		cfg.PrefsPath = p
	}
	if l := strings.TrimSpace(opts.LogFile); l != "" {
		cfg.LogFile = l
	}
	if err := cfg.Normalize(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Run boots the jot TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	store := &state.Store{}
	unsubscribe := store.Subscribe(func(s state.Snapshot) {
		target, editing := s.EditTarget()
		env.Logger.Debug("store changed",
			"revision", s.Revision,
			"todos", len(s.Todos),
			"done", s.CompletedCount(),
			"editing", editing,
			"target", target)
	})
	defer unsubscribe()

	env.Logger.Info("starting", "theme", ui.ModeLabel(env.Theme.Value()))
	err = ui.Run(ui.Options{
		Context: ctx,
		Store:   store,
		Theme:   env.Theme,
		Logger:  env.Logger,
	})
	if err != nil {
		env.Logger.Error("ui exited", "err", err)
		return err
	}
	env.Logger.Info("exiting")
	return nil
}
