package nodes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acdlab/acdctl/internal/config"
	"github.com/acdlab/acdctl/internal/provisioning"
)

type fakeRunner struct {
	upProfiles []string
	upErr      error
	execCalls  []string // "<container> <args...>"
	execErrOn  int      // 1-based call number that fails, 0 = never
	downCalls  int
}

func (f *fakeRunner) Up(_ context.Context, profile string) error {
	f.upProfiles = append(f.upProfiles, profile)
	return f.upErr
}

func (f *fakeRunner) Down(_ context.Context) error {
	f.downCalls++
	return nil
}

func (f *fakeRunner) Exec(_ context.Context, container string, args ...string) (string, error) {
	f.execCalls = append(f.execCalls, container+" "+strings.Join(args, " "))
	if f.execErrOn > 0 && len(f.execCalls) == f.execErrOn {
		return "", errors.New("exec failed")
	}
	return "OK", nil
}

type fakeMgmt struct {
	bootstrapCalls int
	readyOn        int // attempt number that succeeds, 0 = never
}

func (f *fakeMgmt) CheckBootstrap(_ context.Context, _ string) error {
	f.bootstrapCalls++
	if f.readyOn > 0 && f.bootstrapCalls >= f.readyOn {
		return nil
	}
	return errors.New("connection refused")
}

func (f *fakeMgmt) CreateDatabase(_ context.Context, _ string, _ []byte) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		ClusterName:    "acd.local",
		Username:       "admin@acd.local",
		Password:       "secret",
		ManagementPort: 9443,
		VIP:            "192.168.20.100",
		Nodes: []config.Node{
			{Name: "node1", Addr: "192.168.20.2"},
			{Name: "node2", Addr: "192.168.20.3"},
			{Name: "node3", Addr: "192.168.20.4"},
		},
		Profiles: config.Profiles{Storage: "storage"},
	}
}

func testContext(t *testing.T, runner *fakeRunner, api *fakeMgmt) *provisioning.Context {
	t.Helper()
	ctx := provisioning.NewContext(context.Background(), testConfig(), runner, api, nil, zerolog.Nop())
	ctx.Timeouts.BootstrapDelay = time.Millisecond
	return ctx
}

func TestLaunchPhase_StartsStorageProfile(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{}
	ctx := testContext(t, runner, nil)

	require.NoError(t, NewLaunchPhase().Provision(ctx))
	assert.Equal(t, []string{"storage"}, runner.upProfiles)
	assert.Equal(t, []string{"storage"}, ctx.State.StartedProfiles)
}

func TestLaunchPhase_PropagatesError(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{upErr: errors.New("compose broken")}
	ctx := testContext(t, runner, nil)

	err := NewLaunchPhase().Provision(ctx)
	require.Error(t, err)
	assert.Empty(t, ctx.State.StartedProfiles)
}

func TestReadinessPhase_ReadyOnThirdAttempt(t *testing.T) {
	t.Parallel()
	api := &fakeMgmt{readyOn: 3}
	ctx := testContext(t, &fakeRunner{}, api)

	require.NoError(t, NewReadinessPhase().Provision(ctx))
	assert.Equal(t, 3, api.bootstrapCalls)
}

func TestReadinessPhase_BoundedAttempts(t *testing.T) {
	t.Parallel()
	api := &fakeMgmt{} // never ready
	ctx := testContext(t, &fakeRunner{}, api)

	err := NewReadinessPhase().Provision(ctx)
	require.Error(t, err)
	assert.Equal(t, 5, api.bootstrapCalls)
	assert.Contains(t, err.Error(), "node1")
}

func TestClusterPhase_IssuesCommandsInOrder(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{}
	ctx := testContext(t, runner, nil)

	require.NoError(t, NewClusterPhase().Provision(ctx))

	require.Equal(t, []string{
		"node1 rladmin cluster create name acd.local username admin@acd.local password secret",
		"node2 rladmin cluster join nodes 192.168.20.2 username admin@acd.local password secret",
		"node3 rladmin cluster join nodes 192.168.20.2 username admin@acd.local password secret",
		"node1 rladmin cluster config handle_redirects enabled",
	}, runner.execCalls)

	assert.True(t, ctx.State.ClusterCreated)
	assert.Equal(t, []string{"node2", "node3"}, ctx.State.JoinedNodes)
}

func TestClusterPhase_StopsWhenCreateFails(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{execErrOn: 1}
	ctx := testContext(t, runner, nil)

	err := NewClusterPhase().Provision(ctx)
	require.Error(t, err)
	assert.Len(t, runner.execCalls, 1)
	assert.False(t, ctx.State.ClusterCreated)
	assert.Empty(t, ctx.State.JoinedNodes)
}

func TestClusterPhase_StopsWhenJoinFails(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{execErrOn: 2}
	ctx := testContext(t, runner, nil)

	err := NewClusterPhase().Provision(ctx)
	require.Error(t, err)
	assert.Len(t, runner.execCalls, 2)
	assert.True(t, ctx.State.ClusterCreated)
	assert.Empty(t, ctx.State.JoinedNodes)
}

func TestBuilder_RejectsJoinBeforeCreate(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{}
	b := newBuilder(runner, time.Second)

	err := b.join(context.Background(), config.Node{Name: "node2", Addr: "192.168.20.3"},
		"192.168.20.2", "admin@acd.local", "secret")
	require.ErrorIs(t, err, ErrClusterNotCreated)
	assert.Empty(t, runner.execCalls)

	err = b.enableRedirects(context.Background(), config.Node{Name: "node1", Addr: "192.168.20.2"})
	require.ErrorIs(t, err, ErrClusterNotCreated)
	assert.Empty(t, runner.execCalls)
}
