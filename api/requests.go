package api

import (
	"github.com/inference-sim/sched-sim/sim"
	"github.com/inference-sim/sched-sim/sim/workload"
)

// ScheduleRequest is the body of POST /api/v1/schedule/:policy.
// Either Processes or Workload must be given; Processes wins when both are.
type ScheduleRequest struct {
	Processes  []sim.Process          `json:"processes"`
	Workload   *workload.WorkloadSpec `json:"workload"`
	Quantum    int64                  `json:"quantum"`
	Multilevel *sim.MultilevelConfig  `json:"multilevel_queue"`
}

// CompareRequest is the body of POST /api/v1/compare.
// Without Processes, each policy gets a fresh generated set unless SameWorkload is set.
type CompareRequest struct {
	Policies     []string               `json:"policies"`
	Processes    []sim.Process          `json:"processes"`
	Workload     *workload.WorkloadSpec `json:"workload"`
	SameWorkload bool                   `json:"same_workload"`
	Quantum      int64                  `json:"quantum"`
	Multilevel   *sim.MultilevelConfig  `json:"multilevel_queue"`
}

func policyConfig(quantum int64, ml *sim.MultilevelConfig) sim.PolicyConfig {
	cfg := sim.ComparisonPolicyConfig()
	if quantum != 0 {
		cfg.RoundRobin.Quantum = quantum
	}
	if ml != nil {
		cfg.Multilevel = *ml
	}
	return cfg
}
