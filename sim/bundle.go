package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyBundle holds the list of policies to run and their parameters, loadable from YAML.
// An empty Policies list means DefaultComparison.
type PolicyBundle struct {
	Policies     []string `yaml:"policies"`
	PolicyConfig `yaml:",inline"`
}

// LoadPolicyBundle reads and parses a YAML policy configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
// Parameters absent from the file keep their ComparisonPolicyConfig values.
func LoadPolicyBundle(path string) (*PolicyBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy config: %w", err)
	}
	bundle := PolicyBundle{PolicyConfig: ComparisonPolicyConfig()}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing policy config: %w", err)
	}
	return &bundle, nil
}

// ValidPolicies is the set of recognized policy names.
// Shared by Validate() and NewPolicy() to avoid duplication.
var ValidPolicies = map[string]bool{
	PolicyFCFS:               true,
	PolicySJF:                true,
	PolicySRTF:               true,
	PolicyRoundRobin:         true,
	PolicyPriority:           true,
	PolicyPriorityPreemptive: true,
	PolicyMultilevelQueue:    true,
}

// DefaultComparison lists every policy in presentation order.
var DefaultComparison = []string{
	PolicyFCFS,
	PolicySJF,
	PolicySRTF,
	PolicyRoundRobin,
	PolicyPriority,
	PolicyPriorityPreemptive,
	PolicyMultilevelQueue,
}

var displayNames = map[string]string{
	PolicyFCFS:               "FCFS",
	PolicySJF:                "SJF Non-Preemptive",
	PolicySRTF:               "SJF Preemptive",
	PolicyRoundRobin:         "Round Robin",
	PolicyPriority:           "Priority Non-Preemptive",
	PolicyPriorityPreemptive: "Priority Preemptive",
	PolicyMultilevelQueue:    "Multilevel Queue",
}

// IsValidPolicy reports whether name is a recognized policy.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// DisplayName returns the human-readable label for a policy name.
// Unknown names are returned unchanged.
func DisplayName(name string) string {
	if d, ok := displayNames[name]; ok {
		return d
	}
	return name
}

// Names returns the policies to run: the configured list, or DefaultComparison.
func (b *PolicyBundle) Names() []string {
	if len(b.Policies) == 0 {
		return DefaultComparison
	}
	return b.Policies
}

// Validate checks that all policy names and parameter ranges in the bundle are valid.
func (b *PolicyBundle) Validate() error {
	seen := make(map[string]bool, len(b.Policies))
	for _, name := range b.Policies {
		if !IsValidPolicy(name) {
			return fmt.Errorf("unknown policy %q", name)
		}
		if seen[name] {
			return fmt.Errorf("policy %q listed twice", name)
		}
		seen[name] = true
	}
	if b.RoundRobin.Quantum < 0 {
		return fmt.Errorf("round_robin.quantum must be non-negative, got %d", b.RoundRobin.Quantum)
	}
	if b.Multilevel.Quantum < 0 {
		return fmt.Errorf("multilevel_queue.quantum must be non-negative, got %d", b.Multilevel.Quantum)
	}
	return nil
}
