// Package compose wraps the docker CLI for bringing container groups up
// and down and for running admin commands inside named containers.
package compose

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts the container orchestrator operations the bootstrap
// phases need. Implemented by CLI; faked in tests.
type Runner interface {
	// Up starts the container group selected by the compose profile,
	// detached.
	Up(ctx context.Context, profile string) error

	// Down stops and removes the whole deployment.
	Down(ctx context.Context) error

	// Exec runs a command inside a named running container and returns
	// its combined standard output.
	Exec(ctx context.Context, container string, args ...string) (string, error)
}

// CommandError reports a failed orchestrator or admin command.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// CLI drives docker and the docker compose plugin.
type CLI struct {
	// File is the compose file describing the deployment.
	File string
}

// NewCLI creates a compose client for the given compose file.
func NewCLI(file string) *CLI {
	return &CLI{File: file}
}

// Up implements Runner.
func (c *CLI) Up(ctx context.Context, profile string) error {
	_, err := c.run(ctx, upArgs(c.File, profile)...)
	return err
}

// Down implements Runner.
func (c *CLI) Down(ctx context.Context) error {
	_, err := c.run(ctx, downArgs(c.File)...)
	return err
}

// Exec implements Runner.
func (c *CLI) Exec(ctx context.Context, container string, args ...string) (string, error) {
	return c.run(ctx, execArgs(container, args)...)
}

func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	// #nosec G204 -- arguments come from validated configuration
	cmd := exec.CommandContext(ctx, "docker", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Command: "docker " + strings.Join(args, " "),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return stdout.String(), nil
}

// upArgs builds the argument list for starting a profile, detached.
func upArgs(file, profile string) []string {
	return []string{"compose", "-f", file, "--profile", profile, "up", "-d"}
}

// downArgs builds the argument list for tearing the deployment down.
func downArgs(file string) []string {
	return []string{"compose", "-f", file, "--profile", "*", "down"}
}

// execArgs builds the argument list for running a command in a container.
func execArgs(container string, command []string) []string {
	return append([]string{"exec", container}, command...)
}
