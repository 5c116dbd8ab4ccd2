package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/jot/internal/app"
	"github.com/five82/jot/internal/logging"
)

func newLogCmd(opts *app.Options) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the end of the jot log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(*opts)
			if err != nil {
				return err
			}
			out, err := logging.Tail(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			for _, line := range out {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show (0 for all)")
	return cmd
}
