package commands

import (
	"github.com/spf13/cobra"

	"github.com/acdlab/acdctl/cmd/acdctl/handlers"
)

// Up returns the up command.
//
// The up command runs the full one-shot bootstrap: certificate bundle,
// storage nodes, cluster formation, load balancers, database, and the
// API and dispatcher services.
func Up() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Bootstrap the full cluster from a clean slate",
		Long: `Up runs the complete bootstrap sequence in its mandatory order:

  1. Generate the TLS key+certificate bundle (kept if it already exists)
  2. Launch the storage node containers
  3. Wait for the first node's management API to answer
  4. Create the cluster, join the remaining nodes, enable redirects
  5. Launch the load balancers
  6. Wait for the virtual IP to answer pings
  7. Create the database from the JSON descriptor
  8. Launch the API and dispatcher services

The sequence stops at the first failure; a failed run can be retried
after 'acdctl destroy'.

Example:
  acdctl up -c acdctl.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), handlers.UpOptions{ConfigPath: configPath})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: acdctl.yaml)")

	return cmd
}
