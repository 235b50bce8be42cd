package commands

import (
	"github.com/spf13/cobra"

	"github.com/acdlab/acdctl/cmd/acdctl/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command tears down every compose profile of the
// deployment: storage nodes, load balancers, API, and dispatcher.
func Destroy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Tear down the whole deployment",
		Long: `Destroy removes all containers of the deployment across every
compose profile.

The certificate bundle and the database descriptor on disk are left
untouched, so a following 'acdctl up' reuses them.

Example:
  acdctl destroy -c acdctl.yaml

WARNING: All cluster and database state inside the containers is lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), handlers.DestroyOptions{ConfigPath: configPath})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: acdctl.yaml)")

	return cmd
}
