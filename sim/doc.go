// Package sim provides the CPU scheduling engine: a single simulated CPU,
// an integer tick clock, and seven scheduling policies that turn a process
// set into per-process start, completion, waiting and turnaround times.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - process.go: Process (immutable input) and Completion (result) records
//   - schedule.go: the run bookkeeping shared by every policy and the Schedule output
//   - fcfs.go, sjf.go, round_robin.go, priority.go, multilevel.go: the policies
//
// # Determinism
//
// Every ready set is totally ordered: policy key first (burst, remaining time or
// priority), then ready-set insertion sequence. Processes becoming eligible on the
// same tick are inserted in (arrival, input position) order, and a preempted process is
// re-inserted behind the arrivals already processed on that tick. Given the same
// input, every policy produces the same schedule.
//
// # Architecture
//
// Policies never mutate their input; per-process remaining time lives in a
// private run record. Implementations in sub-packages:
//   - sim/workload/: random process-set generation and CSV loading
//   - sim/trace/: decision trace recording
//   - sim/report/: tables, Gantt lines and charts
//   - sim/telemetry/: Prometheus export of per-policy metrics
//
// # Key Interfaces
//
//   - Policy: schedule a process set (see NewPolicy for the registry)
//   - ProcessSource: supply a fresh process set per policy for Compare
package sim
