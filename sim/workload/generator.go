package workload

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/sched-sim/sim"
)

// GenerateProcesses creates a random process set from spec using rng.
// PIDs run 1..NumProcesses in generation order; arrival, burst and priority
// are drawn uniformly and independently from their inclusive ranges, in that
// order per process. Deterministic given the same spec and rng state.
func GenerateProcesses(spec *WorkloadSpec, rng *rand.Rand) ([]sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	if spec.Arrival.Min == spec.Arrival.Max && spec.NumProcesses > 1 {
		logrus.Warnf("workload: all %d processes arrive at tick %d", spec.NumProcesses, spec.Arrival.Min)
	}

	procs := make([]sim.Process, spec.NumProcesses)
	for i := range procs {
		procs[i] = sim.Process{
			PID:         i + 1,
			ArrivalTime: uniform(rng, spec.Arrival),
			BurstTime:   uniform(rng, spec.Burst),
			Priority:    int(uniform(rng, spec.Priority)),
		}
	}
	logrus.Debugf("workload: generated %d processes", len(procs))
	return procs, nil
}

// uniform draws from the inclusive range r.
func uniform(rng *rand.Rand, r RangeSpec) int64 {
	return r.Min + rng.Int63n(r.Max-r.Min+1)
}

// NewSource returns a sim.ProcessSource generating from spec.
// With shared=true every policy receives a copy of one set drawn from the
// workload stream; otherwise each policy draws a fresh set from its own
// stream, so policy order does not affect any set.
func NewSource(spec *WorkloadSpec, shared bool) sim.ProcessSource {
	rng := sim.NewSeedStreams(spec.Seed)
	var cached []sim.Process
	return func(policy string) ([]sim.Process, error) {
		if !shared {
			return GenerateProcesses(spec, rng.Stream(sim.PolicyStream(policy)))
		}
		if cached == nil {
			procs, err := GenerateProcesses(spec, rng.Stream(sim.WorkloadStream))
			if err != nil {
				return nil, err
			}
			cached = procs
		}
		return sim.CloneProcesses(cached), nil
	}
}
