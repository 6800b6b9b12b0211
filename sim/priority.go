package sim

// PriorityNP schedules procs by static priority without preemption (lower
// value = more urgent). Equal priorities go to the process admitted to the
// ready set first.
func PriorityNP(procs []Process) (*Schedule, error) {
	r, err := newRunner(PolicyPriority, procs)
	if err != nil {
		return nil, err
	}
	if err := runNonPreemptive(r, priorityKey); err != nil {
		return nil, err
	}
	return r.schedule(), nil
}

// PriorityPreemptive schedules procs by static priority with preemption on arrival.
//
// Each arriving process is compared with the running one as it is admitted; a
// strictly more urgent arrival sends the running process back to the ready set
// right behind itself. The running process is always the ready-set minimum at
// dispatch and the set only grows through arrivals, so checking arrivals is
// equivalent to checking the whole ready set every tick.
func PriorityPreemptive(procs []Process) (*Schedule, error) {
	r, err := newRunner(PolicyPriorityPreemptive, procs)
	if err != nil {
		return nil, err
	}

	ordered := r.byArrival()
	ready := newReadyHeap(priorityKey)
	next := 0
	var current *run

	for r.pending > 0 {
		for next < len(ordered) && ordered[next].proc.ArrivalTime <= r.clock {
			x := ordered[next]
			next++
			r.admit(ready, x)
			if current != nil && x.proc.Priority < current.proc.Priority {
				r.preempt(current, x.proc.PID)
				r.admit(ready, current)
				current = nil
			}
		}

		if current == nil && ready.Len() > 0 {
			current = ready.PopNext()
			r.dispatch(current)
		}

		if current == nil {
			if err := r.idleUntilNext(ordered, next); err != nil {
				return nil, err
			}
			continue
		}
		r.execute(current, 1)
		if current.remaining == 0 {
			r.complete(current)
			current = nil
		}
	}
	return r.schedule(), nil
}
