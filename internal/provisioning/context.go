package provisioning

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/acdlab/acdctl/internal/config"
	"github.com/acdlab/acdctl/internal/platform/compose"
	"github.com/acdlab/acdctl/internal/platform/mgmt"
	"github.com/acdlab/acdctl/internal/util/netutil"
)

// State holds the shared results of bootstrap phases.
// It is progressively populated as each phase completes.
type State struct {
	// Certificate results
	BundlePath        string // final location of the key+certificate bundle
	CertificateReused bool   // true when an existing bundle was kept

	// Cluster results
	ClusterCreated bool
	JoinedNodes    []string // node container names that joined the cluster

	// Database results
	DatabaseCreated bool

	// Launcher results
	StartedProfiles []string // compose profiles brought up, in order
}

// NewState creates an empty bootstrap state.
func NewState() *State {
	return &State{}
}

// Context wraps all dependencies and state needed by a bootstrap phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Compose  compose.Runner
	Mgmt     mgmt.API
	Pinger   netutil.Pinger
	Timeouts *config.Timeouts
	Log      zerolog.Logger
}

// NewContext creates a new bootstrap context.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	runner compose.Runner,
	api mgmt.API,
	pinger netutil.Pinger,
	log zerolog.Logger,
) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Compose:  runner,
		Mgmt:     api,
		Pinger:   pinger,
		Timeouts: config.LoadTimeouts(),
		Log:      log,
	}
}
