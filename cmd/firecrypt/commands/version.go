package commands

import (
	"github.com/spf13/cobra"
)

// version: print build information. Needs no configuration.
func versionCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := rt.build.WriteTo(rt.stdout)
			return err
		},
	}
}
