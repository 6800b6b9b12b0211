package sim

import "fmt"

// DefaultQuantum is the round-robin time slice when none is configured.
const DefaultQuantum int64 = 2

// RoundRobin schedules procs over a FIFO ready queue with a fixed time quantum.
// After each slice, processes that arrived during it are queued ahead of the
// process whose slice just expired. A process that keeps the CPU because
// nothing else is waiting is not dispatched again.
func RoundRobin(procs []Process, quantum int64) (*Schedule, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("round robin: %w, got %d", ErrInvalidQuantum, quantum)
	}
	r, err := newRunner(PolicyRoundRobin, procs)
	if err != nil {
		return nil, err
	}

	ordered := r.byArrival()
	queue := NewRingQueue[*run](len(ordered))
	next := 0
	admitArrived := func() {
		for next < len(ordered) && ordered[next].proc.ArrivalTime <= r.clock {
			r.nextSeq(ordered[next])
			queue.Enqueue(ordered[next])
			next++
		}
	}

	var renewed *run // process whose slice expired with nobody else waiting
	for r.pending > 0 {
		admitArrived()
		x, ok := queue.Dequeue()
		if !ok {
			if err := r.idleUntilNext(ordered, next); err != nil {
				return nil, err
			}
			continue
		}

		if x == renewed {
			x.state = StateRunning
		} else {
			r.dispatch(x)
		}
		renewed = nil
		r.execute(x, min(quantum, x.remaining))
		admitArrived()

		if x.remaining == 0 {
			r.complete(x)
			continue
		}
		if queue.Len() > 0 {
			r.preempt(x, 0)
		} else {
			renewed = x
		}
		r.nextSeq(x)
		queue.Enqueue(x)
	}
	return r.schedule(), nil
}
