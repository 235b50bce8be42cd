package handlers

import (
	"context"
	"fmt"

	"github.com/acdlab/acdctl/internal/config"
	"github.com/acdlab/acdctl/internal/platform/compose"
)

// DestroyOptions configures the destroy handler.
type DestroyOptions struct {
	ConfigPath string
}

// Destroy tears the whole compose deployment down.
func Destroy(ctx context.Context, opts DestroyOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	return destroyWith(ctx, cfg, compose.NewCLI(cfg.ComposeFile))
}

func destroyWith(ctx context.Context, cfg *config.Config, runner compose.Runner) error {
	log := newLogger()
	log.Info().Str("compose_file", cfg.ComposeFile).Msg("tearing deployment down")

	downCtx, cancel := context.WithTimeout(ctx, config.LoadTimeouts().ComposeUp)
	defer cancel()

	if err := runner.Down(downCtx); err != nil {
		return fmt.Errorf("destroy deployment: %w", err)
	}

	log.Info().Msg("deployment removed")
	return nil
}
