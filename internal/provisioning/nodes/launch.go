package nodes

import (
	"context"
	"fmt"

	"github.com/acdlab/acdctl/internal/provisioning"
)

// LaunchPhase starts the storage-node container group.
type LaunchPhase struct{}

// NewLaunchPhase creates the storage-node launcher.
func NewLaunchPhase() *LaunchPhase {
	return &LaunchPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *LaunchPhase) Name() string {
	return "nodes"
}

// Provision brings the storage profile up, detached.
func (p *LaunchPhase) Provision(ctx *provisioning.Context) error {
	profile := ctx.Config.Profiles.Storage

	upCtx, cancel := context.WithTimeout(ctx, ctx.Timeouts.ComposeUp)
	defer cancel()

	if err := ctx.Compose.Up(upCtx, profile); err != nil {
		return fmt.Errorf("start storage nodes: %w", err)
	}

	ctx.State.StartedProfiles = append(ctx.State.StartedProfiles, profile)
	ctx.Log.Info().Str("profile", profile).Int("nodes", len(ctx.Config.Nodes)).Msg("storage nodes started")
	return nil
}
