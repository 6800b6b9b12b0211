// Implements the RingQueue, the FIFO ready queue used by round robin.
// Processes are enqueued on admission and re-enqueued at the tail when their slice expires.

package sim

// RingQueue is a FIFO queue backed by a growable circular buffer.
// Enqueue and Dequeue are amortized O(1).
type RingQueue[T any] struct {
	buf  []T
	head int
	size int
}

// NewRingQueue creates a RingQueue with room for capacity items before growing.
func NewRingQueue[T any](capacity int) *RingQueue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingQueue[T]{buf: make([]T, capacity)}
}

// Enqueue adds an item to the back of the queue.
func (q *RingQueue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Dequeue removes the item at the front of the queue.
// The boolean is false if the queue is empty.
func (q *RingQueue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

// Len returns the number of items in the queue.
func (q *RingQueue[T]) Len() int {
	return q.size
}

func (q *RingQueue[T]) grow() {
	next := make([]T, len(q.buf)*2)
	for i := 0; i < q.size; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
