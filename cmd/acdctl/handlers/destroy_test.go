package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acdlab/acdctl/internal/config"
)

type downRunner struct {
	fakeRunner
	downErr error
}

func (d *downRunner) Down(ctx context.Context) error {
	_ = d.fakeRunner.Down(ctx)
	return d.downErr
}

func TestDestroyWith_RunsDown(t *testing.T) {
	runner := &downRunner{}
	cfg := &config.Config{ComposeFile: "docker-compose.yml"}

	require.NoError(t, destroyWith(context.Background(), cfg, runner))
	assert.Equal(t, []string{"down"}, runner.events)
}

func TestDestroyWith_PropagatesError(t *testing.T) {
	runner := &downRunner{downErr: errors.New("compose broken")}
	cfg := &config.Config{ComposeFile: "docker-compose.yml"}

	err := destroyWith(context.Background(), cfg, runner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destroy deployment")
}
