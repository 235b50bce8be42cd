// Package netutil provides network readiness helpers for the bootstrap flow.
package netutil

import (
	"context"
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// TimeoutError reports that a bounded network wait expired without the
// target ever answering.
type TimeoutError struct {
	Op   string
	Addr string
	Wait time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s %s: no answer within %v", e.Op, e.Addr, e.Wait)
}

// Timeout implements the net.Error timeout convention.
func (e *TimeoutError) Timeout() bool { return true }

// Pinger sends a single echo probe to an address.
type Pinger interface {
	Ping(ctx context.Context, addr string) error
}

// ICMPPinger probes with one ICMP echo request per call.
type ICMPPinger struct {
	// Timeout bounds a single echo round trip.
	Timeout time.Duration

	// Privileged selects raw ICMP sockets instead of UDP ping.
	Privileged bool
}

// Ping sends one ICMP echo and returns an error if no reply arrives.
func (p *ICMPPinger) Ping(ctx context.Context, addr string) error {
	pinger, err := probing.NewPinger(addr)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", addr, err)
	}
	pinger.Count = 1
	pinger.Timeout = p.Timeout
	if pinger.Timeout == 0 {
		pinger.Timeout = 2 * time.Second
	}
	pinger.SetPrivileged(p.Privileged)

	if err := pinger.RunWithContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", addr, err)
	}
	if pinger.Statistics().PacketsRecv == 0 {
		return fmt.Errorf("ping %s: no reply", addr)
	}
	return nil
}

// WaitForPing probes the address once per interval until a probe succeeds
// or the timeout expires. Individual probe failures are swallowed; the
// only terminal outcomes are success, a TimeoutError, or context
// cancellation from the caller.
func WaitForPing(ctx context.Context, p Pinger, addr string, interval, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Probe immediately before waiting for the ticker.
	if err := p.Ping(ctx, addr); err == nil {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return &TimeoutError{Op: "ping", Addr: addr, Wait: timeout}
			}
			return ctx.Err()
		case <-ticker.C:
			if err := p.Ping(ctx, addr); err == nil {
				return nil
			}
		}
	}
}
