// Package services starts the container groups that depend on the
// cluster: the REST API layer and the dispatcher.
package services

import (
	"context"
	"fmt"

	"github.com/acdlab/acdctl/internal/provisioning"
)

// Provisioner starts the API and dispatch container groups, in that
// order.
type Provisioner struct{}

// NewProvisioner creates the service launcher.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "services"
}

// Provision brings the API profile up, then the dispatch profile.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	for _, profile := range []string{ctx.Config.Profiles.API, ctx.Config.Profiles.Dispatch} {
		upCtx, cancel := context.WithTimeout(ctx, ctx.Timeouts.ComposeUp)
		err := ctx.Compose.Up(upCtx, profile)
		cancel()
		if err != nil {
			return fmt.Errorf("start %s services: %w", profile, err)
		}
		ctx.State.StartedProfiles = append(ctx.State.StartedProfiles, profile)
		ctx.Log.Info().Str("profile", profile).Msg("services started")
	}
	return nil
}
