// Package config loads and validates the bootstrap configuration.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name looked up when none is given.
const DefaultFile = "acdctl.yaml"

// Config describes the deployment to bootstrap.
type Config struct {
	// ClusterName is the name given to the cluster on create.
	ClusterName string `yaml:"cluster_name" validate:"required"`

	// Username and Password are the cluster admin credentials, used both
	// for the admin commands and for the management API.
	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password" validate:"required"`

	// ComposeFile is the compose file describing all container groups.
	ComposeFile string `yaml:"compose_file"`

	// Nodes lists the storage-node containers. The first node creates the
	// cluster; the remaining nodes join it.
	Nodes []Node `yaml:"nodes" validate:"required,min=1,dive"`

	// ManagementPort is the HTTPS port of the management API on every
	// node and on the VIP.
	ManagementPort int `yaml:"management_port" validate:"min=1,max=65535"`

	// VIP is the virtual IP fronting the load-balancer tier.
	VIP string `yaml:"vip" validate:"required,ip"`

	// DatabaseFile is the JSON descriptor posted to create the database.
	DatabaseFile string `yaml:"database_file" validate:"required"`

	Certificate Certificate `yaml:"certificate"`
	Profiles    Profiles    `yaml:"profiles"`
}

// Node identifies one storage-node container.
type Node struct {
	// Name is the container name used for admin command execution.
	Name string `yaml:"name" validate:"required"`

	// Addr is the node's address on the deployment network.
	Addr string `yaml:"addr" validate:"required,ip"`
}

// Certificate configures the proxy certificate bundle.
type Certificate struct {
	// BundlePath is where the combined key+certificate PEM bundle lives.
	BundlePath string `yaml:"bundle_path"`

	// KeyBits is the RSA key size.
	KeyBits int `yaml:"key_bits" validate:"min=0"`

	// ValidityDays is the certificate lifetime.
	ValidityDays int `yaml:"validity_days" validate:"min=0"`

	CommonName   string `yaml:"common_name"`
	Organization string `yaml:"organization"`
	Country      string `yaml:"country"`
}

// Profiles names the compose profiles for each container group.
type Profiles struct {
	Storage  string `yaml:"storage"`
	Balancer string `yaml:"balancer"`
	API      string `yaml:"api"`
	Dispatch string `yaml:"dispatch"`
}

// LoadFile reads, defaults, and validates the configuration.
func LoadFile(path string) (*Config, error) {
	// #nosec G304 -- path comes from the CLI flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ComposeFile == "" {
		c.ComposeFile = "docker-compose.yml"
	}
	if c.ManagementPort == 0 {
		c.ManagementPort = 9443
	}
	if c.Certificate.BundlePath == "" {
		c.Certificate.BundlePath = "certs/proxy.pem"
	}
	if c.Certificate.KeyBits == 0 {
		c.Certificate.KeyBits = 4096
	}
	if c.Certificate.ValidityDays == 0 {
		c.Certificate.ValidityDays = 365
	}
	if c.Certificate.CommonName == "" {
		c.Certificate.CommonName = c.ClusterName
	}
	if c.Profiles.Storage == "" {
		c.Profiles.Storage = "storage"
	}
	if c.Profiles.Balancer == "" {
		c.Profiles.Balancer = "balancer"
	}
	if c.Profiles.API == "" {
		c.Profiles.API = "api"
	}
	if c.Profiles.Dispatch == "" {
		c.Profiles.Dispatch = "dispatch"
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// BootstrapBaseURL is the management API base URL of the first node.
func (c *Config) BootstrapBaseURL() string {
	return fmt.Sprintf("https://%s:%d", c.Nodes[0].Addr, c.ManagementPort)
}

// VIPBaseURL is the management API base URL behind the virtual IP.
func (c *Config) VIPBaseURL() string {
	return fmt.Sprintf("https://%s:%d", c.VIP, c.ManagementPort)
}
