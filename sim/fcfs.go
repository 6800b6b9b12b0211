package sim

// FCFS schedules procs First-Come-First-Served: arrival order (ties by input position),
// no preemption, idling only until the next arrival when nothing is ready.
func FCFS(procs []Process) (*Schedule, error) {
	r, err := newRunner(PolicyFCFS, procs)
	if err != nil {
		return nil, err
	}
	for _, x := range r.byArrival() {
		if r.clock < x.proc.ArrivalTime {
			if err := r.idle(x.proc.ArrivalTime - r.clock); err != nil {
				return nil, err
			}
		}
		r.dispatch(x)
		r.execute(x, x.remaining)
		r.complete(x)
	}
	return r.schedule(), nil
}
