package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/sched-sim/sim"
	"github.com/inference-sim/sched-sim/sim/workload"
)

// ServeConfig holds the HTTP server section of the config file.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Config represents the full config file structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Workload     workload.WorkloadSpec `yaml:"workload"`
	SameWorkload bool                  `yaml:"same_workload"`
	Policy       sim.PolicyBundle      `yaml:"policy"`
	Serve        ServeConfig           `yaml:"serve"`
}

// DefaultConfig is the configuration used when no file is given: the
// comparison workload, a fresh process set per policy, every policy, round
// robin at quantum 4.
func DefaultConfig() Config {
	return Config{
		Workload: workload.DefaultWorkloadSpec(),
		Policy:   sim.PolicyBundle{PolicyConfig: sim.ComparisonPolicyConfig()},
		Serve:    ServeConfig{Addr: ":9095"},
	}
}

// LoadConfig parses a config file over DefaultConfig.
// Uses strict field checking: typos must cause errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the workload and policy sections.
func (c *Config) Validate() error {
	if err := c.Workload.Validate(); err != nil {
		return fmt.Errorf("workload: %w", err)
	}
	if err := c.Policy.Validate(); err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	return nil
}
