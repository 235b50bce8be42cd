// Package database creates the application database on the cluster.
package database

import (
	"context"
	"fmt"
	"os"

	"github.com/acdlab/acdctl/internal/provisioning"
)

// Provisioner posts the database descriptor to the management API
// behind the virtual IP.
type Provisioner struct{}

// NewProvisioner creates a new database provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "database"
}

// Provision sends the descriptor file byte-for-byte. The descriptor's
// contents are opaque here; the management API owns its schema. A
// non-2xx response is a failure.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	// #nosec G304 -- path comes from validated configuration
	descriptor, err := os.ReadFile(ctx.Config.DatabaseFile)
	if err != nil {
		return fmt.Errorf("read database descriptor: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, ctx.Timeouts.HTTP)
	defer cancel()

	if err := ctx.Mgmt.CreateDatabase(reqCtx, ctx.Config.VIPBaseURL(), descriptor); err != nil {
		return err
	}

	ctx.State.DatabaseCreated = true
	ctx.Log.Info().Str("descriptor", ctx.Config.DatabaseFile).Msg("database created")
	return nil
}
