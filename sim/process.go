// Defines the Process record that models one unit of schedulable work,
// and the Completion record a scheduling run produces for it.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process within one run.
type ProcessState string

const (
	StateNew       ProcessState = "new"
	StateReady     ProcessState = "ready"
	StateRunning   ProcessState = "running"
	StateCompleted ProcessState = "completed"
)

// Process is the immutable input record handed to every policy.
// Identity is PID; two processes in one set must not share a PID.
type Process struct {
	PID         int   `json:"pid"`          // Unique identifier, assigned by the generator
	ArrivalTime int64 `json:"arrival_time"` // Tick at which the process becomes eligible to run (>= 0)
	BurstTime   int64 `json:"burst_time"`   // Total CPU ticks required (> 0)
	Priority    int   `json:"priority"`     // Lower value = more urgent
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, Arrival: %d, Burst: %d, Priority: %d)", p.PID, p.ArrivalTime, p.BurstTime, p.Priority)
}

// Completion is the result record for one process after a run.
// All timing fields are in ticks.
type Completion struct {
	Process
	StartTime      int64 `json:"start_time"`      // first tick the process held the CPU
	CompletionTime int64 `json:"completion_time"` // tick at which remaining time reached zero
	WaitingTime    int64 `json:"waiting_time"`    // TurnaroundTime - BurstTime
	TurnaroundTime int64 `json:"turnaround_time"` // CompletionTime - ArrivalTime
}

// NewCompletion derives turnaround and waiting time from the start and completion ticks.
func NewCompletion(p Process, start, completion int64) Completion {
	turnaround := completion - p.ArrivalTime
	return Completion{
		Process:        p,
		StartTime:      start,
		CompletionTime: completion,
		WaitingTime:    turnaround - p.BurstTime,
		TurnaroundTime: turnaround,
	}
}

// ResponseTime is the delay between arrival and first dispatch.
func (c Completion) ResponseTime() int64 {
	return c.StartTime - c.ArrivalTime
}

// CloneProcesses returns an independent copy of procs.
func CloneProcesses(procs []Process) []Process {
	out := make([]Process, len(procs))
	copy(out, procs)
	return out
}
