package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Dispatches      int
	Preemptions     int
	Completions     int
	ContextSwitches int // dispatches whose PID differs from the previous dispatch
	IdleTicks       int64
	DispatchesByPID map[int]int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchesByPID: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.Dispatches = len(st.Dispatches)
	summary.Preemptions = len(st.Preemptions)
	summary.Completions = len(st.Completions)
	summary.IdleTicks = st.IdleTicks

	prev := 0
	for i, d := range st.Dispatches {
		summary.DispatchesByPID[d.PID]++
		if i > 0 && d.PID != prev {
			summary.ContextSwitches++
		}
		prev = d.PID
	}
	return summary
}
