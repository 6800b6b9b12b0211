package sim

// RoundRobinConfig groups round-robin parameters.
type RoundRobinConfig struct {
	Quantum int64 `yaml:"quantum"` // time slice in ticks (0 = DefaultQuantum)
}

// PolicyConfig groups the tunable parameters of the policies that have any.
type PolicyConfig struct {
	RoundRobin RoundRobinConfig `yaml:"round_robin"`
	Multilevel MultilevelConfig `yaml:"multilevel_queue"`
}

// ComparisonPolicyConfig is the configuration used for side-by-side comparison:
// round robin at quantum 4 and the default multilevel split.
func ComparisonPolicyConfig() PolicyConfig {
	return PolicyConfig{
		RoundRobin: RoundRobinConfig{Quantum: 4},
		Multilevel: DefaultMultilevelConfig(),
	}
}

// WithDefaults fills zero-valued fields. An all-zero multilevel config means
// the default split; a zero multilevel quantum alone means the default quantum.
func (c PolicyConfig) WithDefaults() PolicyConfig {
	if c.RoundRobin.Quantum == 0 {
		c.RoundRobin.Quantum = DefaultQuantum
	}
	if c.Multilevel == (MultilevelConfig{}) {
		c.Multilevel = DefaultMultilevelConfig()
	} else if c.Multilevel.Quantum == 0 {
		c.Multilevel.Quantum = DefaultMultilevelConfig().Quantum
	}
	return c
}
