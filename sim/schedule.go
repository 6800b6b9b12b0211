package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/sched-sim/sim/trace"
)

// Slice is one contiguous stretch of CPU time given to a single process (a Gantt segment).
type Slice struct {
	PID   int   `json:"pid"`
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Schedule is the output of one policy run.
type Schedule struct {
	Policy      string                 // registry name of the policy that produced it
	Completions []Completion           // one per input process
	Timeline    []Slice                // CPU occupancy in time order; idle gaps are not slices
	Trace       *trace.SimulationTrace // dispatch/preemption/completion decisions
	// Levels holds the independently clocked sub-schedules of a multilevel queue.
	// Timeline and Trace are nil when Levels is set.
	Levels []*Schedule
}

// Completion returns the completion record for pid.
func (s *Schedule) Completion(pid int) (Completion, bool) {
	for _, c := range s.Completions {
		if c.PID == pid {
			return c, true
		}
	}
	return Completion{}, false
}

// TraceSummary summarizes the decision trace, summing over levels when present.
func (s *Schedule) TraceSummary() *trace.TraceSummary {
	if len(s.Levels) == 0 {
		return trace.Summarize(s.Trace)
	}
	total := trace.Summarize(nil)
	for _, lvl := range s.Levels {
		sub := lvl.TraceSummary()
		total.Dispatches += sub.Dispatches
		total.Preemptions += sub.Preemptions
		total.Completions += sub.Completions
		total.ContextSwitches += sub.ContextSwitches
		total.IdleTicks += sub.IdleTicks
		for pid, n := range sub.DispatchesByPID {
			total.DispatchesByPID[pid] += n
		}
	}
	return total
}

// run is the engine-private mutable state of one process during one run.
type run struct {
	proc      Process
	index     int // position in the caller's slice
	remaining int64
	started   bool
	start     int64
	seq       uint64 // ready-set insertion sequence
	state     ProcessState
}

// runner owns the simulated clock and bookkeeping shared by every policy.
type runner struct {
	policy   string
	runs     []*run
	clock    int64
	budget   int64
	seq      uint64
	pending  int
	results  []Completion
	timeline []Slice
	trace    *trace.SimulationTrace
}

func newRunner(policy string, procs []Process) (*runner, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}
	r := &runner{
		policy:  policy,
		runs:    make([]*run, len(procs)),
		budget:  tickBudget(procs),
		pending: len(procs),
		results: make([]Completion, len(procs)),
		trace:   trace.NewSimulationTrace(),
	}
	for i, p := range procs {
		r.runs[i] = &run{proc: p, index: i, remaining: p.BurstTime, state: StateNew}
	}
	return r, nil
}

// byArrival returns the runs ordered by arrival time, then input position.
func (r *runner) byArrival() []*run {
	ordered := make([]*run, len(r.runs))
	copy(ordered, r.runs)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].proc.ArrivalTime != ordered[j].proc.ArrivalTime {
			return ordered[i].proc.ArrivalTime < ordered[j].proc.ArrivalTime
		}
		return ordered[i].index < ordered[j].index
	})
	return ordered
}

// idleUntilNext advances the clock to the next unadmitted arrival in ordered.
func (r *runner) idleUntilNext(ordered []*run, next int) error {
	if next >= len(ordered) {
		return r.idle(1)
	}
	return r.idle(ordered[next].proc.ArrivalTime - r.clock)
}

// nextSeq stamps x with the next ready-set insertion sequence.
func (r *runner) nextSeq(x *run) {
	r.seq++
	x.seq = r.seq
	x.state = StateReady
}

// admit stamps x and inserts it into a ready heap.
func (r *runner) admit(ready *readyHeap, x *run) {
	r.nextSeq(x)
	ready.Add(x)
}

// dispatch gives x the CPU at the current clock.
func (r *runner) dispatch(x *run) {
	first := !x.started
	if first {
		x.started = true
		x.start = r.clock
	}
	x.state = StateRunning
	r.trace.RecordDispatch(trace.DispatchRecord{PID: x.proc.PID, Clock: r.clock, First: first})
	logrus.Debugf("[%s tick %d] dispatch pid=%d remaining=%d", r.policy, r.clock, x.proc.PID, x.remaining)
}

// execute runs x for ticks and advances the clock.
func (r *runner) execute(x *run, ticks int64) {
	if n := len(r.timeline); n > 0 && r.timeline[n-1].PID == x.proc.PID && r.timeline[n-1].End == r.clock {
		r.timeline[n-1].End += ticks
	} else {
		r.timeline = append(r.timeline, Slice{PID: x.proc.PID, Start: r.clock, End: r.clock + ticks})
	}
	x.remaining -= ticks
	r.clock += ticks
}

// preempt records x leaving the CPU before finishing. by is the PID that
// displaced it, or 0 when its slice expired.
func (r *runner) preempt(x *run, by int) {
	x.state = StateReady
	r.trace.RecordPreemption(trace.PreemptionRecord{PID: x.proc.PID, By: by, Clock: r.clock, Remaining: x.remaining})
	logrus.Debugf("[%s tick %d] preempt pid=%d by=%d remaining=%d", r.policy, r.clock, x.proc.PID, by, x.remaining)
}

// complete finalizes x at the current clock.
func (r *runner) complete(x *run) {
	x.state = StateCompleted
	r.results[x.index] = NewCompletion(x.proc, x.start, r.clock)
	r.pending--
	r.trace.RecordCompletion(trace.CompletionRecord{PID: x.proc.PID, Clock: r.clock})
	logrus.Debugf("[%s tick %d] complete pid=%d", r.policy, r.clock, x.proc.PID)
}

// idle advances the clock with nothing running. It fails once the clock
// passes the tick budget, which valid input never reaches.
func (r *runner) idle(ticks int64) error {
	r.clock += ticks
	r.trace.RecordIdle(ticks)
	if r.clock > r.budget {
		return fmt.Errorf("%s: %w (clock=%d, budget=%d, pending=%d)", r.policy, ErrStalled, r.clock, r.budget, r.pending)
	}
	return nil
}

func (r *runner) schedule() *Schedule {
	logrus.Infof("[%s] scheduled %d processes, makespan=%d ticks", r.policy, len(r.results), r.clock)
	return &Schedule{
		Policy:      r.policy,
		Completions: r.results,
		Timeline:    r.timeline,
		Trace:       r.trace,
	}
}
