package nodes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acdlab/acdctl/internal/config"
	"github.com/acdlab/acdctl/internal/platform/compose"
	"github.com/acdlab/acdctl/internal/provisioning"
)

// adminTool is the cluster admin binary inside every node container.
const adminTool = "rladmin"

// ErrClusterNotCreated is returned when a join or configure command is
// attempted before the cluster has been created on the first node.
var ErrClusterNotCreated = errors.New("cluster has not been created yet")

// ClusterPhase forms the launched nodes into a cluster.
type ClusterPhase struct{}

// NewClusterPhase creates the cluster builder phase.
func NewClusterPhase() *ClusterPhase {
	return &ClusterPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *ClusterPhase) Name() string {
	return "cluster"
}

// Provision issues the admin commands in their mandatory order: create
// on the first node, join on every other node, then enable redirect
// handling on the first node. Each command's result is checked and the
// sequence stops at the first failure.
func (p *ClusterPhase) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	b := newBuilder(ctx.Compose, ctx.Timeouts.Exec)
	seed := cfg.Nodes[0]

	if err := b.create(ctx, seed, cfg.ClusterName, cfg.Username, cfg.Password); err != nil {
		return err
	}
	ctx.State.ClusterCreated = true
	ctx.Log.Info().Str("node", seed.Name).Str("cluster", cfg.ClusterName).Msg("cluster created")

	for _, node := range cfg.Nodes[1:] {
		if err := b.join(ctx, node, seed.Addr, cfg.Username, cfg.Password); err != nil {
			return err
		}
		ctx.State.JoinedNodes = append(ctx.State.JoinedNodes, node.Name)
		ctx.Log.Info().Str("node", node.Name).Msg("node joined cluster")
	}

	if err := b.enableRedirects(ctx, seed); err != nil {
		return err
	}
	ctx.Log.Info().Msg("redirect handling enabled")

	return nil
}

// builder runs cluster admin commands and enforces their ordering:
// create must succeed before any join or configure command.
type builder struct {
	runner      compose.Runner
	execTimeout time.Duration
	created     bool
}

func newBuilder(runner compose.Runner, execTimeout time.Duration) *builder {
	return &builder{runner: runner, execTimeout: execTimeout}
}

func (b *builder) create(ctx context.Context, node config.Node, cluster, username, password string) error {
	err := b.exec(ctx, node,
		"cluster", "create",
		"name", cluster,
		"username", username,
		"password", password,
	)
	if err != nil {
		return fmt.Errorf("create cluster on %s: %w", node.Name, err)
	}
	b.created = true
	return nil
}

func (b *builder) join(ctx context.Context, node config.Node, seedAddr, username, password string) error {
	if !b.created {
		return fmt.Errorf("join %s: %w", node.Name, ErrClusterNotCreated)
	}
	err := b.exec(ctx, node,
		"cluster", "join",
		"nodes", seedAddr,
		"username", username,
		"password", password,
	)
	if err != nil {
		return fmt.Errorf("join %s: %w", node.Name, err)
	}
	return nil
}

func (b *builder) enableRedirects(ctx context.Context, node config.Node) error {
	if !b.created {
		return fmt.Errorf("configure %s: %w", node.Name, ErrClusterNotCreated)
	}
	err := b.exec(ctx, node, "cluster", "config", "handle_redirects", "enabled")
	if err != nil {
		return fmt.Errorf("configure %s: %w", node.Name, err)
	}
	return nil
}

func (b *builder) exec(ctx context.Context, node config.Node, args ...string) error {
	execCtx, cancel := context.WithTimeout(ctx, b.execTimeout)
	defer cancel()

	_, err := b.runner.Exec(execCtx, node.Name, append([]string{adminTool}, args...)...)
	return err
}
