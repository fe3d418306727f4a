// ABOUTME: Unbounded FIFO queue between the controller and the engine
// ABOUTME: Push never blocks; the consumer drains everything pending at once
package protocol

import "sync"

// Queue is an unbounded single-producer single-consumer FIFO
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
	ready chan struct{}
}

// CommandQueue carries commands to the engine
type CommandQueue = Queue[Command]

// EventQueue carries events to the controller
type EventQueue = Queue[Event]

// NewQueue creates an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		ready: make(chan struct{}, 1),
	}
}

// Push appends an item and wakes the consumer
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Drain removes and returns every pending item in push order
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

// Len returns the number of pending items
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Ready receives a value after one or more pushes since the last receive
func (q *Queue[T]) Ready() <-chan struct{} {
	return q.ready
}
