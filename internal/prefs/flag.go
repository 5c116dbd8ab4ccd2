package prefs

import (
	"context"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// ThemeLightKey holds the light/dark preference. true means light.
const ThemeLightKey = "theme.light"

const defaultFlagValue = true

// Flag is a boolean preference that is loaded once and saved on every change.
type Flag struct {
	kv     KV
	key    string
	logger *log.Logger

	mu    sync.RWMutex
	value bool
}

// NewFlag builds a Flag for key and loads its current value from kv.
func NewFlag(ctx context.Context, kv KV, key string, logger *log.Logger) *Flag {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	f := &Flag{kv: kv, key: key, logger: logger, value: defaultFlagValue}
	f.Load(ctx)
	return f
}

// Key returns the key the flag is stored under.
func (f *Flag) Key() string {
	return f.key
}

// Load reads the stored value. Missing, unreadable or non-boolean values
// yield true.
func (f *Flag) Load(ctx context.Context) bool {
	value := defaultFlagValue
	if f.kv != nil {
		raw, ok, err := f.kv.Get(ctx, f.key)
		switch {
		case err != nil:
			f.logger.Warn("pref read failed, using default", "key", f.key, "err", err)
		case ok:
			if parsed, perr := strconv.ParseBool(raw); perr == nil {
				value = parsed
			} else {
				f.logger.Warn("pref is not a boolean, using default", "key", f.key, "value", raw)
			}
		}
	}

	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
	return value
}

// Value returns the in-memory value.
func (f *Flag) Value() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Set updates the value and writes it through to the store. Write failures
// are logged and otherwise ignored; the in-memory value changes regardless.
func (f *Flag) Set(ctx context.Context, value bool) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()

	if f.kv == nil {
		return
	}
	if err := f.kv.Set(ctx, f.key, strconv.FormatBool(value)); err != nil {
		f.logger.Warn("pref write failed", "key", f.key, "err", err)
		return
	}
	f.logger.Debug("pref saved", "key", f.key, "value", value)
}

// Toggle flips the value, saves it and returns the new value.
func (f *Flag) Toggle(ctx context.Context) bool {
	f.mu.RLock()
	next := !f.value
	f.mu.RUnlock()
	f.Set(ctx, next)
	return next
}
