// Package main is the entry point for the acdctl CLI.
//
// acdctl is a command-line tool for bootstrapping a containerized
// contact-distribution lab cluster in one shot: it generates the TLS
// certificate bundle, launches and joins the storage nodes, brings up
// the load balancers, creates the database, and starts the API and
// dispatcher services.
//
// Commands: up, destroy, doctor, version, completion.
//
// For detailed usage information, run:
//
//	acdctl --help
package main

import (
	"fmt"
	"os"

	"github.com/acdlab/acdctl/cmd/acdctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
