package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// MultilevelConfig partitions processes between the two levels of a multilevel queue.
type MultilevelConfig struct {
	PriorityThreshold int   `yaml:"priority_threshold" json:"priority_threshold"` // priority <= threshold goes to the round-robin level
	Quantum           int64 `yaml:"quantum" json:"quantum"`                       // round-robin level time slice
}

// DefaultMultilevelConfig returns the two-level split used for policy comparison:
// priorities 1-2 under round robin with quantum 4, everything else FCFS.
func DefaultMultilevelConfig() MultilevelConfig {
	return MultilevelConfig{PriorityThreshold: 2, Quantum: 4}
}

// MultilevelQueue splits procs by priority into a round-robin level and an FCFS
// level. Each level is scheduled to completion on its own clock with no
// cross-level preemption; completions are merged and sorted by PID.
func MultilevelQueue(procs []Process, cfg MultilevelConfig) (*Schedule, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}
	if cfg.Quantum <= 0 {
		return nil, fmt.Errorf("multilevel queue: %w, got %d", ErrInvalidQuantum, cfg.Quantum)
	}

	var upper, lower []Process
	for _, p := range procs {
		if p.Priority <= cfg.PriorityThreshold {
			upper = append(upper, p)
		} else {
			lower = append(lower, p)
		}
	}
	logrus.Debugf("[%s] round-robin level=%d processes, fcfs level=%d processes", PolicyMultilevelQueue, len(upper), len(lower))

	out := &Schedule{Policy: PolicyMultilevelQueue}
	if len(upper) > 0 {
		s, err := RoundRobin(upper, cfg.Quantum)
		if err != nil {
			return nil, fmt.Errorf("multilevel queue round-robin level: %w", err)
		}
		out.Levels = append(out.Levels, s)
		out.Completions = append(out.Completions, s.Completions...)
	}
	if len(lower) > 0 {
		s, err := FCFS(lower)
		if err != nil {
			return nil, fmt.Errorf("multilevel queue fcfs level: %w", err)
		}
		out.Levels = append(out.Levels, s)
		out.Completions = append(out.Completions, s.Completions...)
	}

	sort.SliceStable(out.Completions, func(i, j int) bool {
		return out.Completions[i].PID < out.Completions[j].PID
	})
	return out, nil
}
