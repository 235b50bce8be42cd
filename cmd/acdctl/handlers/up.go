package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/acdlab/acdctl/internal/config"
	"github.com/acdlab/acdctl/internal/platform/compose"
	"github.com/acdlab/acdctl/internal/platform/mgmt"
	"github.com/acdlab/acdctl/internal/provisioning"
	"github.com/acdlab/acdctl/internal/provisioning/balancer"
	"github.com/acdlab/acdctl/internal/provisioning/cert"
	"github.com/acdlab/acdctl/internal/provisioning/database"
	"github.com/acdlab/acdctl/internal/provisioning/nodes"
	"github.com/acdlab/acdctl/internal/provisioning/services"
	"github.com/acdlab/acdctl/internal/util/netutil"
)

// UpOptions configures the up handler.
type UpOptions struct {
	ConfigPath string
}

// Up runs the full bootstrap sequence.
func Up(ctx context.Context, opts UpOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	timeouts := config.LoadTimeouts()
	client := mgmt.NewClient(cfg.Username, cfg.Password, timeouts.HTTP)
	defer client.Close()

	pCtx := provisioning.NewContext(
		ctx,
		cfg,
		compose.NewCLI(cfg.ComposeFile),
		client,
		&netutil.ICMPPinger{},
		newLogger(),
	)
	pCtx.Timeouts = timeouts

	if err := provisioning.RunPhases(pCtx, bootstrapPhases()); err != nil {
		return err
	}

	printUpSuccess(cfg, pCtx.State)
	return nil
}

// bootstrapPhases returns the bootstrap sequence in its mandatory order.
func bootstrapPhases() []provisioning.Phase {
	return []provisioning.Phase{
		cert.NewProvisioner(),
		nodes.NewLaunchPhase(),
		nodes.NewReadinessPhase(),
		nodes.NewClusterPhase(),
		balancer.NewLaunchPhase(),
		balancer.NewVIPPhase(),
		database.NewProvisioner(),
		services.NewProvisioner(),
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultFile
	}
	return config.LoadFile(path)
}

// printUpSuccess outputs the completion summary.
func printUpSuccess(cfg *config.Config, state *provisioning.State) {
	green := color.New(color.FgGreen, color.Bold)
	_, _ = green.Println("\nBootstrap complete!")

	fmt.Printf("  Cluster:     %s (%d nodes)\n", cfg.ClusterName, len(cfg.Nodes))
	fmt.Printf("  Certificate: %s\n", state.BundlePath)
	fmt.Printf("  Database:    created from %s\n", cfg.DatabaseFile)
	fmt.Printf("  Profiles:    %s\n", strings.Join(state.StartedProfiles, ", "))
	fmt.Printf("\nManagement UI:\n  %s\n", cfg.VIPBaseURL())
}
