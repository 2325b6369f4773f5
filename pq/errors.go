package pq

import (
	"errors"
	"fmt"
)

// ErrEmptyQueue is matched (via errors.Is) by the error returned when peeking/dequeuing from a queue with no values.
var ErrEmptyQueue = errors.New("queue is empty")

// EmptyQueueError is returned by Peek and Dequeue when the queue has no values. The queue is left unchanged.
type EmptyQueueError struct {
	// Op is the operation which failed, "peek" or "dequeue".
	Op string
}

func (e *EmptyQueueError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Op, ErrEmptyQueue)
}

func (e *EmptyQueueError) Unwrap() error {
	return ErrEmptyQueue
}
