package commands

import (
	"github.com/spf13/cobra"

	"github.com/acdlab/acdctl/cmd/acdctl/handlers"
)

// Doctor returns the command for checking bootstrap prerequisites.
//
// This command verifies the client tools and the files the bootstrap
// will need, without touching the deployment.
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites for a bootstrap run",
		Long: `Doctor checks everything 'acdctl up' will need:

  - Required client tools on PATH (docker)
  - The compose file
  - The database descriptor
  - The certificate bundle (generated on demand if missing)

Example:
  acdctl doctor -c acdctl.yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Doctor(handlers.DoctorOptions{ConfigPath: configPath})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: acdctl.yaml)")

	return cmd
}
