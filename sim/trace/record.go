// Package trace provides decision-trace recording for scheduling runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// DispatchRecord captures a process being given the CPU.
type DispatchRecord struct {
	PID   int
	Clock int64
	First bool // true on the first dispatch of the process
}

// PreemptionRecord captures a running process being returned to the ready set.
// By is the PID that caused the preemption, or 0 when the slice simply expired
// (round robin).
type PreemptionRecord struct {
	PID       int
	By        int
	Clock     int64
	Remaining int64
}

// CompletionRecord captures a process finishing its burst.
type CompletionRecord struct {
	PID   int
	Clock int64
}
