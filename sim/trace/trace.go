package trace

// SimulationTrace collects decision records during one scheduling run.
// A nil *SimulationTrace is valid and records nothing.
type SimulationTrace struct {
	Dispatches  []DispatchRecord
	Preemptions []PreemptionRecord
	Completions []CompletionRecord
	IdleTicks   int64
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		Dispatches:  make([]DispatchRecord, 0),
		Preemptions: make([]PreemptionRecord, 0),
		Completions: make([]CompletionRecord, 0),
	}
}

func (st *SimulationTrace) enabled() bool {
	return st != nil
}

// RecordDispatch appends a dispatch decision record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	if st.enabled() {
		st.Dispatches = append(st.Dispatches, record)
	}
}

// RecordPreemption appends a preemption decision record.
func (st *SimulationTrace) RecordPreemption(record PreemptionRecord) {
	if st.enabled() {
		st.Preemptions = append(st.Preemptions, record)
	}
}

// RecordCompletion appends a completion record.
func (st *SimulationTrace) RecordCompletion(record CompletionRecord) {
	if st.enabled() {
		st.Completions = append(st.Completions, record)
	}
}

// RecordIdle adds ticks during which the CPU had nothing ready to run.
func (st *SimulationTrace) RecordIdle(ticks int64) {
	if st.enabled() {
		st.IdleTicks += ticks
	}
}
