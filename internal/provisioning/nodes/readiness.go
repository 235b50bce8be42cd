package nodes

import (
	"context"
	"fmt"

	"github.com/acdlab/acdctl/internal/provisioning"
	"github.com/acdlab/acdctl/internal/util/retry"
)

// ReadinessPhase waits for the first node's management API to answer.
type ReadinessPhase struct{}

// NewReadinessPhase creates the readiness prober.
func NewReadinessPhase() *ReadinessPhase {
	return &ReadinessPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *ReadinessPhase) Name() string {
	return "readiness"
}

// Provision probes the bootstrap endpoint with a bounded number of
// fixed-delay attempts. Every error class is retryable here: the node is
// still starting, so refused connections, TLS failures, and non-2xx
// statuses all mean "try again". Exhausting the attempts is terminal.
func (p *ReadinessPhase) Provision(ctx *provisioning.Context) error {
	baseURL := ctx.Config.BootstrapBaseURL()
	attempt := 0

	err := retry.Do(ctx, func() error {
		attempt++
		probeCtx, cancel := context.WithTimeout(ctx, ctx.Timeouts.HTTP)
		defer cancel()

		if err := ctx.Mgmt.CheckBootstrap(probeCtx, baseURL); err != nil {
			ctx.Log.Debug().Err(err).Int("attempt", attempt).Msg("bootstrap endpoint not ready")
			return err
		}
		return nil
	},
		retry.WithAttempts(ctx.Timeouts.BootstrapAttempts),
		retry.WithFixedDelay(ctx.Timeouts.BootstrapDelay),
	)
	if err != nil {
		return fmt.Errorf("node %s never became ready: %w", ctx.Config.Nodes[0].Name, err)
	}

	ctx.Log.Info().Str("endpoint", baseURL).Int("attempts", attempt).Msg("bootstrap endpoint ready")
	return nil
}
