package sim

import (
	"fmt"
)

// Registry names of the scheduling policies.
const (
	PolicyFCFS               = "fcfs"
	PolicySJF                = "sjf"
	PolicySRTF               = "srtf"
	PolicyRoundRobin         = "round-robin"
	PolicyPriority           = "priority"
	PolicyPriorityPreemptive = "priority-preemptive"
	PolicyMultilevelQueue    = "multilevel-queue"
)

// Policy schedules a process set on a single simulated CPU.
// Implementations MUST NOT modify procs; results are returned in a new Schedule.
type Policy interface {
	Name() string
	Schedule(procs []Process) (*Schedule, error)
}

// FCFSPolicy is First-Come-First-Served.
type FCFSPolicy struct{}

func (p *FCFSPolicy) Name() string { return PolicyFCFS }

func (p *FCFSPolicy) Schedule(procs []Process) (*Schedule, error) { return FCFS(procs) }

// SJFPolicy is non-preemptive Shortest-Job-First.
type SJFPolicy struct{}

func (p *SJFPolicy) Name() string { return PolicySJF }

func (p *SJFPolicy) Schedule(procs []Process) (*Schedule, error) { return SJF(procs) }

// SRTFPolicy is preemptive Shortest-Job-First (Shortest Remaining Time First).
type SRTFPolicy struct{}

func (p *SRTFPolicy) Name() string { return PolicySRTF }

func (p *SRTFPolicy) Schedule(procs []Process) (*Schedule, error) { return SRTF(procs) }

// RoundRobinPolicy time-slices a FIFO ready queue.
type RoundRobinPolicy struct {
	Quantum int64
}

func (p *RoundRobinPolicy) Name() string { return PolicyRoundRobin }

func (p *RoundRobinPolicy) Schedule(procs []Process) (*Schedule, error) {
	return RoundRobin(procs, p.Quantum)
}

// PriorityPolicy is non-preemptive static priority.
type PriorityPolicy struct{}

func (p *PriorityPolicy) Name() string { return PolicyPriority }

func (p *PriorityPolicy) Schedule(procs []Process) (*Schedule, error) { return PriorityNP(procs) }

// PriorityPreemptivePolicy is static priority with preemption on arrival.
type PriorityPreemptivePolicy struct{}

func (p *PriorityPreemptivePolicy) Name() string { return PolicyPriorityPreemptive }

func (p *PriorityPreemptivePolicy) Schedule(procs []Process) (*Schedule, error) {
	return PriorityPreemptive(procs)
}

// MultilevelQueuePolicy composes round robin and FCFS over priority levels.
type MultilevelQueuePolicy struct {
	Config MultilevelConfig
}

func (p *MultilevelQueuePolicy) Name() string { return PolicyMultilevelQueue }

func (p *MultilevelQueuePolicy) Schedule(procs []Process) (*Schedule, error) {
	return MultilevelQueue(procs, p.Config)
}

// NewPolicy creates a Policy by name.
// Valid names are defined in ValidPolicies (bundle.go).
// Zero-valued config fields fall back to defaults.
// Panics on unrecognized names.
func NewPolicy(name string, cfg PolicyConfig) Policy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	cfg = cfg.WithDefaults()
	switch name {
	case PolicyFCFS:
		return &FCFSPolicy{}
	case PolicySJF:
		return &SJFPolicy{}
	case PolicySRTF:
		return &SRTFPolicy{}
	case PolicyRoundRobin:
		return &RoundRobinPolicy{Quantum: cfg.RoundRobin.Quantum}
	case PolicyPriority:
		return &PriorityPolicy{}
	case PolicyPriorityPreemptive:
		return &PriorityPreemptivePolicy{}
	case PolicyMultilevelQueue:
		return &MultilevelQueuePolicy{Config: cfg.Multilevel}
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}
