package notify

import (
	"errors"
	"sync"
)

var (
	// ErrQueueFull is returned when the pending queue is at capacity.
	ErrQueueFull = errors.New("notification queue is full")
)

// Queue is a concurrency-safe in-memory FIFO of pending events. A capacity
// cap keeps a stalled publisher from growing the backlog without bound.
type Queue struct {
	mu sync.Mutex

	// arrival-ordered backlog
	pending []Event

	// capacity configuration
	maxPending int // max number of queued events
}

// NewQueue creates a new Queue with an optional capacity.
// If maxPending is <= 0, it is treated as unlimited.
func NewQueue(maxPending int) *Queue {
	return &Queue{
		maxPending: maxPending,
	}
}

// Enqueue appends an event to the backlog, rejecting it when the queue is
// at capacity.
func (q *Queue) Enqueue(evt Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.maxPending > 0 && len(q.pending) >= q.maxPending {
		return ErrQueueFull
	}

	q.pending = append(q.pending, evt)
	return nil
}

// Drain removes and returns up to max events in arrival order.
// If max is <= 0, the whole backlog is drained.
func (q *Queue) Drain(max int) []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.pending)
	if max > 0 && max < n {
		n = max
	}
	if n == 0 {
		return nil
	}

	batch := make([]Event, n)
	copy(batch, q.pending[:n])
	q.pending = q.pending[n:]
	return batch
}

// Len reports the number of events waiting to be published.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
