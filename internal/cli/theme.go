package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/jot/internal/app"
	"github.com/five82/jot/internal/ui"
)

func newThemeCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the saved light/dark theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := app.Open(ctx, *opts)
			if err != nil {
				return err
			}
			defer env.Close()

			if len(args) == 1 {
				switch strings.ToLower(strings.TrimSpace(args[0])) {
				case "light":
					env.Theme.Set(ctx, true)
				case "dark":
					env.Theme.Set(ctx, false)
				case "toggle":
					env.Theme.Toggle(ctx)
				default:
					return fmt.Errorf("unknown theme %q (want light, dark or toggle)", args[0])
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.ModeLabel(env.Theme.Value()))
			return nil
		},
	}
}
