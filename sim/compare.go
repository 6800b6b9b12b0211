package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ProcessSource supplies the process set for one policy run. It is called
// once per policy and must return a set the caller does not reuse elsewhere.
type ProcessSource func(policy string) ([]Process, error)

// StaticSource returns a ProcessSource handing every policy its own copy of procs.
func StaticSource(procs []Process) ProcessSource {
	return func(string) ([]Process, error) {
		return CloneProcesses(procs), nil
	}
}

// Run is one policy applied to one process set, with its aggregated metrics.
type Run struct {
	Policy    string
	Processes []Process
	Schedule  *Schedule
	Metrics   *Metrics
}

// Comparison holds the runs of several policies in the order requested.
type Comparison struct {
	Runs []*Run
}

// Metrics returns the per-run metrics in run order.
func (c *Comparison) Metrics() []*Metrics {
	out := make([]*Metrics, len(c.Runs))
	for i, r := range c.Runs {
		out[i] = r.Metrics
	}
	return out
}

// RunPolicy schedules procs under the named policy and aggregates the result.
func RunPolicy(name string, cfg PolicyConfig, procs []Process) (*Run, error) {
	if !IsValidPolicy(name) {
		return nil, fmt.Errorf("unknown policy %q", name)
	}
	s, err := NewPolicy(name, cfg).Schedule(procs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	m, err := NewMetrics(s)
	if err != nil {
		return nil, err
	}
	logrus.Infof("[%s] avg wait=%.2f avg turnaround=%.2f util=%.2f%% throughput=%.4f",
		name, m.AvgWaitingTime, m.AvgTurnaroundTime, m.CPUUtilization, m.Throughput)
	return &Run{Policy: name, Processes: procs, Schedule: s, Metrics: m}, nil
}

// Compare runs each named policy independently on the set source yields for it.
// Policies never share process state; each run gets whatever source returns.
func Compare(names []string, cfg PolicyConfig, source ProcessSource) (*Comparison, error) {
	if len(names) == 0 {
		names = DefaultComparison
	}
	c := &Comparison{Runs: make([]*Run, 0, len(names))}
	for _, name := range names {
		procs, err := source(name)
		if err != nil {
			return nil, fmt.Errorf("process set for %s: %w", name, err)
		}
		r, err := RunPolicy(name, cfg, procs)
		if err != nil {
			return nil, err
		}
		c.Runs = append(c.Runs, r)
	}
	return c, nil
}
