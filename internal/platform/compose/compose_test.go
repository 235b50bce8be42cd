package compose

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpArgs(t *testing.T) {
	t.Parallel()
	args := upArgs("docker-compose.yml", "storage")
	assert.Equal(t, []string{"compose", "-f", "docker-compose.yml", "--profile", "storage", "up", "-d"}, args)
}

func TestDownArgs(t *testing.T) {
	t.Parallel()
	args := downArgs("deploy/compose.yaml")
	assert.Equal(t, []string{"compose", "-f", "deploy/compose.yaml", "--profile", "*", "down"}, args)
}

func TestExecArgs(t *testing.T) {
	t.Parallel()
	args := execArgs("node1", []string{"rladmin", "cluster", "create", "name", "acd.local"})
	assert.Equal(t, []string{"exec", "node1", "rladmin", "cluster", "create", "name", "acd.local"}, args)
}

func TestCommandError_Format(t *testing.T) {
	t.Parallel()
	inner := errors.New("exit status 1")

	withStderr := &CommandError{Command: "docker exec node1 rladmin", Stderr: "no such container", Err: inner}
	assert.Contains(t, withStderr.Error(), "no such container")
	assert.Contains(t, withStderr.Error(), "docker exec node1 rladmin")
	assert.ErrorIs(t, withStderr, inner)

	withoutStderr := &CommandError{Command: "docker compose up", Err: inner}
	assert.Contains(t, withoutStderr.Error(), "exit status 1")
}
