// Package app is jot's composition root.
//
// Open loads the config file, applies command-line overrides, opens the log
// file and the preferences backend, and loads the theme flag. Run builds on
// Open: it creates the todo store, subscribes a debug logger to it and runs
// the TUI until the user quits or the context is cancelled.
//
//	Run()
//	  ├─> LoadConfig()      config.toml + overrides
//	  ├─> logging.Open()    file logger, discard on failure
//	  ├─> prefs.Open()      toml | sqlite | memory
//	  ├─> prefs.NewFlag()   theme.light, true when unset
//	  ├─> state.Store{}     todos, draft, edit target
//	  └─> ui.Run()          blocks
//
// Only the theme preference outlives the process; todos live in memory.
package app
