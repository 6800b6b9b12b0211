package sim

import "container/heap"

// readyKey extracts the policy ordering key from a run (burst, remaining time, priority).
type readyKey func(*run) int64

var (
	burstKey     readyKey = func(r *run) int64 { return r.proc.BurstTime }
	remainingKey readyKey = func(r *run) int64 { return r.remaining }
	priorityKey  readyKey = func(r *run) int64 { return int64(r.proc.Priority) }
)

// readyHeap is the ready set of the selection-based policies, with deterministic ordering.
// Ordering: policy key → ready-set insertion sequence.
// A run's key must not change while it sits in the heap.
type readyHeap struct {
	items []*run
	key   readyKey
}

func newReadyHeap(key readyKey) *readyHeap {
	h := &readyHeap{
		items: make([]*run, 0),
		key:   key,
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *readyHeap) Len() int {
	return len(h.items)
}

// Less implements heap.Interface.
// Order by: key (lower first) → insertion sequence (earlier first)
func (h *readyHeap) Less(i, j int) bool {
	ri, rj := h.items[i], h.items[j]
	ki, kj := h.key(ri), h.key(rj)
	if ki != kj {
		return ki < kj
	}
	return ri.seq < rj.seq
}

// Swap implements heap.Interface
func (h *readyHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// Push implements heap.Interface
func (h *readyHeap) Push(x interface{}) {
	h.items = append(h.items, x.(*run))
}

// Pop implements heap.Interface
func (h *readyHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[0 : n-1]
	return item
}

// Add inserts a run; its seq must already be assigned.
func (h *readyHeap) Add(r *run) {
	heap.Push(h, r)
}

// PopNext removes and returns the best run, or nil if empty.
func (h *readyHeap) PopNext() *run {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(*run)
}

// Peek returns the best run without removing it.
func (h *readyHeap) Peek() *run {
	if h.Len() == 0 {
		return nil
	}
	return h.items[0]
}
