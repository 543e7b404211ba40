// Package ring implements a fixed-capacity FIFO ring buffer.
package ring

import (
	"sync"
)

// Buffer keeps the newest items when full: pushing onto a full buffer drops
// the oldest item.
type Buffer[T any] struct {
	mu    sync.Mutex
	items []T
	head  int
	tail  int
	size  int
	count int
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{
		items: make([]T, capacity),
		size:  capacity,
	}
}

func (rb *Buffer[T]) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

// Push appends item and reports whether the oldest item was dropped to make
// room.
func (rb *Buffer[T]) Push(item T) (dropped bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.count == rb.size {
		var zero T
		rb.items[rb.head] = zero
		rb.head = (rb.head + 1) % rb.size
		dropped = true
	} else {
		rb.count++
	}
	rb.items[rb.tail] = item
	rb.tail = (rb.tail + 1) % rb.size
	return dropped
}

func (rb *Buffer[T]) Pop() (T, bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.count == 0 {
		var zero T
		return zero, false
	}
	val := rb.items[rb.head]
	var zero T
	rb.items[rb.head] = zero
	rb.head = (rb.head + 1) % rb.size
	rb.count--
	return val, true
}

// Drain pops items oldest first until the buffer is empty or fn returns an
// error. Items pushed by fn are drained in the same call.
func (rb *Buffer[T]) Drain(fn func(T) error) error {
	for {
		item, ok := rb.Pop()
		if !ok {
			return nil
		}
		if err := fn(item); err != nil {
			return err
		}
	}
}
