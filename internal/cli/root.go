package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/jot/internal/app"
)

// Version is set via ldflags at build time.
var Version = "dev"

// NewRootCmd builds the jot command tree. With no subcommand it runs the TUI.
func NewRootCmd() *cobra.Command {
	opts := &app.Options{}

	cmd := &cobra.Command{
		Use:          "jot",
		Short:        "A small terminal todo list",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  jot

  # Keep preferences in SQLite instead of TOML
  jot --backend sqlite

  # Inspect or change the saved theme
  jot theme
  jot theme dark
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), *opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Path to config.toml (default ~/.config/jot/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "Path to the preferences file")
	flags.StringVar(&opts.Backend, "backend", "", "Preferences backend (toml|sqlite|memory)")
	flags.StringVar(&opts.LogFile, "log-file", "", "Path to the log file")
	flags.BoolVar(&opts.Debug, "debug", false, "Log at debug level")

	cmd.AddCommand(newThemeCmd(opts))
	cmd.AddCommand(newLogCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the jot version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "jot %s\n", Version)
			return nil
		},
	}
}
