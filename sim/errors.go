package sim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoProcesses is returned when a policy is handed an empty process set.
	ErrNoProcesses = errors.New("no processes to schedule")
	// ErrInvalidBurst is returned for a process with burst time <= 0.
	ErrInvalidBurst = errors.New("burst time must be positive")
	// ErrNegativeArrival is returned for a process with arrival time < 0.
	ErrNegativeArrival = errors.New("arrival time must be non-negative")
	// ErrDuplicatePID is returned when two processes share a PID.
	ErrDuplicatePID = errors.New("duplicate pid")
	// ErrInvalidQuantum is returned for a round-robin quantum <= 0.
	ErrInvalidQuantum = errors.New("time quantum must be positive")
	// ErrHorizonOverflow is returned when the last arrival plus the total burst
	// does not fit the tick clock.
	ErrHorizonOverflow = errors.New("process set exceeds the tick range")
	// ErrStalled is returned when a run exceeds its tick budget without finishing.
	ErrStalled = errors.New("scheduler made no progress within tick budget")
	// ErrEmptySchedule is returned when metrics are requested for zero completions.
	ErrEmptySchedule = errors.New("no completed processes to aggregate")
	// ErrZeroSpan is returned when the observed time span is zero.
	ErrZeroSpan = errors.New("total time span is zero")
)

// ValidateProcesses checks the preconditions every policy relies on:
// a non-empty set, positive bursts, non-negative arrivals, unique PIDs and a
// tick budget that fits in int64.
func ValidateProcesses(procs []Process) error {
	if len(procs) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[int]bool, len(procs))
	var last, work int64
	for i, p := range procs {
		if p.BurstTime <= 0 {
			return fmt.Errorf("process[%d] pid=%d: %w, got %d", i, p.PID, ErrInvalidBurst, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("process[%d] pid=%d: %w, got %d", i, p.PID, ErrNegativeArrival, p.ArrivalTime)
		}
		if seen[p.PID] {
			return fmt.Errorf("process[%d]: %w %d", i, ErrDuplicatePID, p.PID)
		}
		seen[p.PID] = true
		if p.BurstTime > math.MaxInt64-work {
			return fmt.Errorf("process[%d] pid=%d: %w: total burst", i, p.PID, ErrHorizonOverflow)
		}
		work += p.BurstTime
		last = max(last, p.ArrivalTime)
	}
	if last > math.MaxInt64-1-work {
		return fmt.Errorf("%w: last arrival %d plus total burst %d", ErrHorizonOverflow, last, work)
	}
	return nil
}

// tickBudget bounds the clock of any run over procs: the last arrival plus
// every tick of work, plus one. ValidateProcesses guarantees it fits.
func tickBudget(procs []Process) int64 {
	var last, work int64
	for _, p := range procs {
		if p.ArrivalTime > last {
			last = p.ArrivalTime
		}
		work += p.BurstTime
	}
	return last + work + 1
}
