// Package prefs persists jot user preferences.
//
// Preferences live behind KV, an opaque string store with three backends:
//
//   - File: flat TOML table, ~/.config/jot/prefs.toml by default
//   - SQLite: k/v table, ~/.config/jot/prefs.sqlite by default
//   - Memory: in-process, nothing survives exit
//
// Flag wraps one boolean key. It reads the key once when constructed and
// writes it on every Set. Reads never fail: a missing key, a read error or a
// value strconv.ParseBool rejects all yield true. Writes are best effort;
// a failed write is logged and the in-memory value still changes.
//
//	kv, err := prefs.Open(ctx, prefs.BackendTOML, "")
//	if err != nil {
//		return err
//	}
//	defer kv.Close()
//
//	light := prefs.NewFlag(ctx, kv, prefs.ThemeLightKey, logger)
//	light.Toggle(ctx)
package prefs
