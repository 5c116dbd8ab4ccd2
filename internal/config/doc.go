// Package config loads jot's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/jot/config.toml
//  3. If the file doesn't exist, use defaults
//  4. Empty fields fall back to their defaults
//
// # Fields
//
//	prefs_backend = "toml"                        # toml, sqlite or memory
//	prefs_path    = "~/.config/jot/prefs.toml"    # default depends on backend
//	log_file      = "~/.local/share/jot/jot.log"
//	log_level     = "info"                        # debug, info, warn, error
//
// Paths are tilde-expanded and made absolute. The memory backend has no path.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML and unknown
// backends. A missing file is not an error.
package config
