package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Generation limits. They keep every sampled tick, and the sum of a whole
// set's arrivals and bursts, far inside int64.
const (
	MaxProcesses        = 100_000
	MaxRangeValue int64 = 1_000_000_000
)

// RangeSpec is an inclusive integer range [Min, Max] sampled uniformly.
type RangeSpec struct {
	Min int64 `yaml:"min" json:"min"`
	Max int64 `yaml:"max" json:"max"`
}

// WorkloadSpec parameterizes random process-set generation.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Seed         int64     `yaml:"seed" json:"seed"`
	NumProcesses int       `yaml:"num_processes" json:"num_processes"`
	Arrival      RangeSpec `yaml:"arrival" json:"arrival"`
	Burst        RangeSpec `yaml:"burst" json:"burst"`
	Priority     RangeSpec `yaml:"priority" json:"priority"`
}

// DefaultWorkloadSpec returns the comparison workload: 20 processes arriving
// in [0,20] with bursts in [1,10] and priorities in [1,5].
func DefaultWorkloadSpec() WorkloadSpec {
	return WorkloadSpec{
		Seed:         42,
		NumProcesses: 20,
		Arrival:      RangeSpec{Min: 0, Max: 20},
		Burst:        RangeSpec{Min: 1, Max: 10},
		Priority:     RangeSpec{Min: 1, Max: 5},
	}
}

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
// Fields absent from the file keep their DefaultWorkloadSpec values.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	spec := DefaultWorkloadSpec()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if s.NumProcesses <= 0 {
		return fmt.Errorf("num_processes must be positive, got %d", s.NumProcesses)
	}
	if s.NumProcesses > MaxProcesses {
		return fmt.Errorf("num_processes must be at most %d, got %d", MaxProcesses, s.NumProcesses)
	}
	if err := validateRange("arrival", s.Arrival); err != nil {
		return err
	}
	if s.Arrival.Min < 0 {
		return fmt.Errorf("arrival.min must be non-negative, got %d", s.Arrival.Min)
	}
	if err := validateRange("burst", s.Burst); err != nil {
		return err
	}
	if s.Burst.Min < 1 {
		return fmt.Errorf("burst.min must be at least 1, got %d", s.Burst.Min)
	}
	return validateRange("priority", s.Priority)
}

func validateRange(name string, r RangeSpec) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s: min %d exceeds max %d", name, r.Min, r.Max)
	}
	if r.Min < -MaxRangeValue || r.Max > MaxRangeValue {
		return fmt.Errorf("%s: [%d, %d] outside [%d, %d]", name, r.Min, r.Max, -MaxRangeValue, MaxRangeValue)
	}
	return nil
}
