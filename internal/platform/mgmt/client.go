// Package mgmt is a client for the cluster management REST API.
//
// The management plane serves a self-signed certificate and guards every
// endpoint with basic auth, so the client disables certificate
// verification and attaches the admin credentials to each call.
package mgmt

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"resty.dev/v3"
)

// API is the subset of management operations the bootstrap flow uses.
// Implemented by Client; faked in tests.
type API interface {
	// CheckBootstrap probes the bootstrap endpoint of a node.
	CheckBootstrap(ctx context.Context, baseURL string) error

	// CreateDatabase creates a database from a raw JSON descriptor.
	CreateDatabase(ctx context.Context, baseURL string, descriptor []byte) error
}

// APIError reports a non-2xx response from the management API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("management API: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the management API of one or more nodes.
type Client struct {
	http *resty.Client
}

// NewClient creates a management client with the given admin credentials.
func NewClient(username, password string, timeout time.Duration) *Client {
	// #nosec G402 -- the local management plane only has self-signed certs
	tlsCfg := &tls.Config{InsecureSkipVerify: true}

	httpClient := resty.New().
		SetBasicAuth(username, password).
		SetTimeout(timeout).
		SetTLSClientConfig(tlsCfg)

	return &Client{http: httpClient}
}

// Close releases connections held by the underlying HTTP client.
func (c *Client) Close() {
	c.http.Close()
}

// CheckBootstrap implements API. Transport errors and non-2xx statuses
// are both failures; the caller decides whether to retry.
func (c *Client) CheckBootstrap(ctx context.Context, baseURL string) error {
	res, err := c.http.R().
		SetContext(ctx).
		Get(baseURL + "/v1/bootstrap")
	if err != nil {
		return fmt.Errorf("bootstrap probe: %w", err)
	}
	if !res.IsSuccess() {
		return &APIError{StatusCode: res.StatusCode(), Body: res.String()}
	}
	return nil
}

// CreateDatabase implements API. The descriptor is posted byte-for-byte;
// its contents are opaque to the bootstrap flow.
func (c *Client) CreateDatabase(ctx context.Context, baseURL string, descriptor []byte) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(descriptor).
		Post(baseURL + "/v1/bdbs")
	if err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	if !res.IsSuccess() {
		return &APIError{StatusCode: res.StatusCode(), Body: res.String()}
	}
	return nil
}
