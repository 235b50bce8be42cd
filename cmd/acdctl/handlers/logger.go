// Package handlers implements the command logic behind the CLI.
//
// Commands in the commands package parse flags and delegate here. Each
// handler wires up the concrete clients (compose CLI, management API,
// ICMP pinger) and runs the relevant part of the bootstrap flow.
package handlers

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger: human-readable console output on a
// terminal, JSON lines otherwise.
func newLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return zerolog.New(writer).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
