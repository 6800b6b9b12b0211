package sim

// SJF schedules procs Shortest-Job-First without preemption. At each decision
// point the arrived process with the smallest burst runs to completion; equal
// bursts go to the process admitted to the ready set first.
func SJF(procs []Process) (*Schedule, error) {
	r, err := newRunner(PolicySJF, procs)
	if err != nil {
		return nil, err
	}
	if err := runNonPreemptive(r, burstKey); err != nil {
		return nil, err
	}
	return r.schedule(), nil
}

// SRTF schedules procs Shortest-Remaining-Time-First (preemptive SJF).
// The clock steps one tick at a time while a process runs; a ready process
// with strictly less remaining time than the running one takes the CPU.
func SRTF(procs []Process) (*Schedule, error) {
	r, err := newRunner(PolicySRTF, procs)
	if err != nil {
		return nil, err
	}

	ordered := r.byArrival()
	ready := newReadyHeap(remainingKey)
	next := 0
	var current *run

	for r.pending > 0 {
		for next < len(ordered) && ordered[next].proc.ArrivalTime <= r.clock {
			r.admit(ready, ordered[next])
			next++
		}

		if current != nil {
			if top := ready.Peek(); top != nil && top.remaining < current.remaining {
				r.preempt(current, top.proc.PID)
				r.admit(ready, current)
				current = ready.PopNext()
				r.dispatch(current)
			}
		} else if ready.Len() > 0 {
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

// runNonPreemptive drives the shared loop of SJF and non-preemptive priority:
// admit every arrived process, pick the ready minimum by key, run it to
// completion; jump to the next arrival when nothing is ready.
func runNonPreemptive(r *runner, key readyKey) error {
	ordered := r.byArrival()
	ready := newReadyHeap(key)
	next := 0

	for r.pending > 0 {
		for next < len(ordered) && ordered[next].proc.ArrivalTime <= r.clock {
			r.admit(ready, ordered[next])
			next++
		}
		x := ready.PopNext()
		if x == nil {
			if err := r.idleUntilNext(ordered, next); err != nil {
				return err
			}
			continue
		}
		r.dispatch(x)
		r.execute(x, x.remaining)
		r.complete(x)
	}
	return nil
}
