package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_Success(t *testing.T) {
	t.Parallel()
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	t.Parallel()
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}, WithAttempts(5), WithFixedDelay(time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()
	attempts := 0
	sentinel := errors.New("always failing")
	err := Do(context.Background(), func() error {
		attempts++
		return sentinel
	}, WithAttempts(5), WithFixedDelay(time.Millisecond))
	require.Error(t, err)
	assert.Equal(t, 5, attempts)
	assert.ErrorIs(t, err, sentinel)
}

func TestDo_FixedDelaySpacing(t *testing.T) {
	t.Parallel()
	delay := 20 * time.Millisecond
	var stamps []time.Time
	err := Do(context.Background(), func() error {
		stamps = append(stamps, time.Now())
		return errors.New("transient")
	}, WithAttempts(3), WithFixedDelay(delay))
	require.Error(t, err)
	require.Len(t, stamps, 3)
	for i := 1; i < len(stamps); i++ {
		assert.GreaterOrEqual(t, stamps[i].Sub(stamps[i-1]), delay)
	}
}

func TestDo_FatalStopsRetrying(t *testing.T) {
	t.Parallel()
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return Fatal(errors.New("bad credentials"))
	}, WithAttempts(5), WithFixedDelay(time.Millisecond))
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := Do(ctx, func() error {
		attempts++
		return errors.New("transient")
	}, WithAttempts(10), WithFixedDelay(time.Second))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestDo_ExponentialBackoffCapped(t *testing.T) {
	t.Parallel()
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return errors.New("transient")
	}, WithAttempts(4), WithDelay(time.Millisecond), WithMultiplier(10), WithMaxDelay(5*time.Millisecond))
	require.Error(t, err)
	assert.Equal(t, 4, attempts)
}

func TestFatal_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Fatal(nil))
	assert.False(t, IsFatal(nil))
}
