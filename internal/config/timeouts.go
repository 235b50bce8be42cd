package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout and retry values.
// These values can be customized via environment variables.
type Timeouts struct {
	BootstrapAttempts int           // Attempts against the bootstrap endpoint
	BootstrapDelay    time.Duration // Delay between bootstrap probe attempts
	VIPTimeout        time.Duration // Bound on waiting for the VIP to answer pings
	VIPInterval       time.Duration // Interval between VIP pings
	ComposeUp         time.Duration // Timeout for a compose up invocation
	Exec              time.Duration // Timeout for one admin command
	HTTP              time.Duration // Timeout for one management API call
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - ACDCTL_BOOTSTRAP_ATTEMPTS (default: 5)
//   - ACDCTL_BOOTSTRAP_DELAY (default: 3s)
//   - ACDCTL_VIP_TIMEOUT (default: 5m)
//   - ACDCTL_VIP_INTERVAL (default: 1s)
//   - ACDCTL_COMPOSE_TIMEOUT (default: 2m)
//   - ACDCTL_EXEC_TIMEOUT (default: 1m)
//   - ACDCTL_HTTP_TIMEOUT (default: 10s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		BootstrapAttempts: parseInt("ACDCTL_BOOTSTRAP_ATTEMPTS", 5),
		BootstrapDelay:    parseDuration("ACDCTL_BOOTSTRAP_DELAY", 3*time.Second),
		VIPTimeout:        parseDuration("ACDCTL_VIP_TIMEOUT", 5*time.Minute),
		VIPInterval:       parseDuration("ACDCTL_VIP_INTERVAL", 1*time.Second),
		ComposeUp:         parseDuration("ACDCTL_COMPOSE_TIMEOUT", 2*time.Minute),
		Exec:              parseDuration("ACDCTL_EXEC_TIMEOUT", 1*time.Minute),
		HTTP:              parseDuration("ACDCTL_HTTP_TIMEOUT", 10*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
