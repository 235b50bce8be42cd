// Package balancer starts the load-balancer tier and waits for its
// virtual IP to answer.
package balancer

import (
	"context"
	"fmt"

	"github.com/acdlab/acdctl/internal/provisioning"
	"github.com/acdlab/acdctl/internal/util/netutil"
)

// LaunchPhase starts the load-balancer container group.
type LaunchPhase struct{}

// NewLaunchPhase creates the load-balancer launcher.
func NewLaunchPhase() *LaunchPhase {
	return &LaunchPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *LaunchPhase) Name() string {
	return "balancer"
}

// Provision brings the balancer profile up, detached.
func (p *LaunchPhase) Provision(ctx *provisioning.Context) error {
	profile := ctx.Config.Profiles.Balancer

	upCtx, cancel := context.WithTimeout(ctx, ctx.Timeouts.ComposeUp)
	defer cancel()

	if err := ctx.Compose.Up(upCtx, profile); err != nil {
		return fmt.Errorf("start load balancers: %w", err)
	}

	ctx.State.StartedProfiles = append(ctx.State.StartedProfiles, profile)
	ctx.Log.Info().Str("profile", profile).Msg("load balancers started")
	return nil
}

// VIPPhase waits for the virtual IP to answer ICMP echoes.
//
// The wait is bounded: a VIP that never answers yields a typed timeout
// error instead of hanging the bootstrap forever.
type VIPPhase struct{}

// NewVIPPhase creates the VIP prober.
func NewVIPPhase() *VIPPhase {
	return &VIPPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *VIPPhase) Name() string {
	return "vip"
}

// Provision pings the VIP once per interval until it answers or the
// timeout expires.
func (p *VIPPhase) Provision(ctx *provisioning.Context) error {
	vip := ctx.Config.VIP

	err := netutil.WaitForPing(ctx, ctx.Pinger, vip, ctx.Timeouts.VIPInterval, ctx.Timeouts.VIPTimeout)
	if err != nil {
		return fmt.Errorf("virtual IP %s unreachable: %w", vip, err)
	}

	ctx.Log.Info().Str("vip", vip).Msg("virtual IP answering")
	return nil
}
