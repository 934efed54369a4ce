// Package config loads the kvmesh Manager's server configuration.
//
// Config is read from a YAML file and merged with command-line flag
// overrides supplied by cmd/kvmesh-manager. Every field has a default
// so a Manager can start with no config file at all.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the Manager daemon's tunables.
type Config struct {
	// Listen is the host:port the gRPC server binds.
	Listen string `yaml:"listen"`

	// Workers bounds the number of unary RPCs the server executes
	// concurrently.
	Workers int `yaml:"workers"`

	// ProbeInterval is the period between Liveness Checker sweeps.
	ProbeInterval time.Duration `yaml:"probe_interval"`

	// ProbeTimeout bounds a single liveness probe call.
	ProbeTimeout time.Duration `yaml:"probe_timeout"`

	// PrepareTimeout bounds a single peer's prepare-phase RPC.
	PrepareTimeout time.Duration `yaml:"prepare_timeout"`

	// CommitTimeout bounds a single peer's commit/abort-phase RPC.
	CommitTimeout time.Duration `yaml:"commit_timeout"`

	// LogLevel is passed straight to internal/logging.Configure.
	LogLevel string `yaml:"log_level"`
}

// Default returns the Config a Manager starts with when no file and
// no flag overrides are supplied.
func Default() Config {
	return Config{
		Listen:         ":50051",
		Workers:        16,
		ProbeInterval:  5 * time.Second,
		ProbeTimeout:   1 * time.Second,
		PrepareTimeout: 2 * time.Second,
		CommitTimeout:  2 * time.Second,
		LogLevel:       "info",
	}
}

// Load reads a YAML config file layered on top of Default. A missing
// file is not an error; it is equivalent to an empty overlay.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations that would make the Manager
// unusable rather than merely suboptimal.
func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("listen address must not be empty")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.ProbeInterval <= 0 {
		return fmt.Errorf("probe_interval must be positive, got %s", c.ProbeInterval)
	}
	return nil
}
