package balancer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acdlab/acdctl/internal/config"
	"github.com/acdlab/acdctl/internal/provisioning"
	"github.com/acdlab/acdctl/internal/util/netutil"
)

type fakeRunner struct {
	upProfiles []string
	upErr      error
}

func (f *fakeRunner) Up(_ context.Context, profile string) error {
	f.upProfiles = append(f.upProfiles, profile)
	return f.upErr
}

func (f *fakeRunner) Down(_ context.Context) error { return nil }

func (f *fakeRunner) Exec(_ context.Context, _ string, _ ...string) (string, error) {
	return "", nil
}

type fakePinger struct {
	calls     int
	succeedOn int
}

func (f *fakePinger) Ping(_ context.Context, _ string) error {
	f.calls++
	if f.succeedOn > 0 && f.calls >= f.succeedOn {
		return nil
	}
	return errors.New("no reply")
}

func testContext(t *testing.T, runner *fakeRunner, pinger *fakePinger) *provisioning.Context {
	t.Helper()
	cfg := &config.Config{
		VIP:      "192.168.20.100",
		Profiles: config.Profiles{Balancer: "balancer"},
	}
	ctx := provisioning.NewContext(context.Background(), cfg, runner, nil, pinger, zerolog.Nop())
	ctx.Timeouts.VIPInterval = 5 * time.Millisecond
	ctx.Timeouts.VIPTimeout = 100 * time.Millisecond
	return ctx
}

func TestLaunchPhase_StartsBalancerProfile(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{}
	ctx := testContext(t, runner, nil)

	require.NoError(t, NewLaunchPhase().Provision(ctx))
	assert.Equal(t, []string{"balancer"}, runner.upProfiles)
	assert.Equal(t, []string{"balancer"}, ctx.State.StartedProfiles)
}

func TestLaunchPhase_PropagatesError(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{upErr: errors.New("compose broken")}
	ctx := testContext(t, runner, nil)
	assert.Error(t, NewLaunchPhase().Provision(ctx))
}

func TestVIPPhase_SucceedsOnFirstReply(t *testing.T) {
	t.Parallel()
	pinger := &fakePinger{succeedOn: 1}
	ctx := testContext(t, &fakeRunner{}, pinger)

	require.NoError(t, NewVIPPhase().Provision(ctx))
	assert.Equal(t, 1, pinger.calls)
}

func TestVIPPhase_SucceedsAfterRetries(t *testing.T) {
	t.Parallel()
	pinger := &fakePinger{succeedOn: 3}
	ctx := testContext(t, &fakeRunner{}, pinger)

	require.NoError(t, NewVIPPhase().Provision(ctx))
	assert.Equal(t, 3, pinger.calls)
}

func TestVIPPhase_TimesOut(t *testing.T) {
	t.Parallel()
	pinger := &fakePinger{} // never answers
	ctx := testContext(t, &fakeRunner{}, pinger)

	err := NewVIPPhase().Provision(ctx)
	require.Error(t, err)

	var te *netutil.TimeoutError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "192.168.20.100", te.Addr)
}
