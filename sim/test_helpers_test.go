package sim

import (
	"testing"
)

// testRandomProcesses draws n processes with the comparison workload ranges:
// arrival in [0,20], burst in [1,10], priority in [1,5], PIDs 1..n.
func testRandomProcesses(seed int64, n int) []Process {
	rng := NewSeedStreams(seed).Stream(WorkloadStream)
	procs := make([]Process, n)
	for i := range procs {
		procs[i] = Process{
			PID:         i + 1,
			ArrivalTime: rng.Int63n(21),
			BurstTime:   1 + rng.Int63n(10),
			Priority:    1 + rng.Intn(5),
		}
	}
	return procs
}

// testMixedProcesses is a small set that exercises arrivals during a run,
// preemption and every policy's tie-breaking.
func testMixedProcesses() []Process {
	return []Process{
		{PID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 3},
		{PID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{PID: 3, ArrivalTime: 2, BurstTime: 8, Priority: 4},
		{PID: 4, ArrivalTime: 3, BurstTime: 6, Priority: 2},
	}
}

// mustSchedule runs policy over procs and fails the test on error.
func mustSchedule(t *testing.T, p Policy, procs []Process) *Schedule {
	t.Helper()
	s, err := p.Schedule(procs)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", p.Name(), err)
	}
	return s
}

// allPolicies returns one instance of every policy with comparison parameters.
func allPolicies() []Policy {
	out := make([]Policy, 0, len(DefaultComparison))
	for _, name := range DefaultComparison {
		out = append(out, NewPolicy(name, ComparisonPolicyConfig()))
	}
	return out
}

// singleLevelPolicies returns every policy that runs one clock over the whole set.
func singleLevelPolicies() []Policy {
	var out []Policy
	for _, p := range allPolicies() {
		if p.Name() != PolicyMultilevelQueue {
			out = append(out, p)
		}
	}
	return out
}
