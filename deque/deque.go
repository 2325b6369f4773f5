// Package deque provides a growable double ended queue implemented using a ring buffer. The priority queue uses one
// per bucket, pushing at the back and popping from the front to keep equal priority values in arrival order.
package deque

import (
	"github.com/dsdecmp/collections/ringbuf"
)

const (
	// DefaultInitialCapacity is the capacity used by NewDeque.
	DefaultInitialCapacity = 2

	// growthFactor is the factor by which the ringbuf capacity increases when we have to grow it.
	growthFactor = 2
)

// IterFunc is a function which will be executed for every element in the deque.
type IterFunc[T any] func(v T)

// Deque is a double-ended queue with constant time push/pop at both ends.
//
// NOTE: The zero value is not usable, create one with NewDeque or NewDequeWithCapacity.
type Deque[T any] struct {
	rb ringbuf.Ringbuf[T]
}

// NewDeque creates a deque of Ts with a default capacity.
func NewDeque[T any]() *Deque[T] {
	return NewDequeWithCapacity[T](DefaultInitialCapacity)
}

// NewDequeWithCapacity creates a new deque of Ts with the given initial capacity, which is raised to one if smaller.
func NewDequeWithCapacity[T any](capacity int) *Deque[T] {
	if capacity < 1 {
		capacity = 1
	}

	return &Deque[T]{rb: ringbuf.NewRingbuf[T](capacity)}
}

// Len returns the number of items currently in the deque.
func (d *Deque[T]) Len() int {
	return d.rb.Len()
}

// Cap returns the number of items the deque can hold before it next has to grow.
func (d *Deque[T]) Cap() int {
	return d.rb.Cap()
}

// reallocIfRequired replaces a full ringbuf with one growthFactor times larger, copying the items across in order.
func (d *Deque[T]) reallocIfRequired() {
	if !d.rb.Full() {
		return
	}

	newRb := ringbuf.NewRingbuf[T](d.rb.Cap() * growthFactor)

	d.rb.Iter(func(v T) { newRb.PushBack(v) })

	d.rb = newRb
}

// PushBack adds v to the end of the deque.
func (d *Deque[T]) PushBack(v T) {
	d.reallocIfRequired()
	d.rb.PushBack(v)
}

// PushFront adds v to the start of the deque.
func (d *Deque[T]) PushFront(v T) {
	d.reallocIfRequired()
	d.rb.PushFront(v)
}

// PeekFront returns the item at the front of the deque without removing it, or the default value and false if the
// deque is empty.
func (d *Deque[T]) PeekFront() (T, bool) {
	return d.rb.PeekFront()
}

// PopBack pops an item from the back of the deque, returning the default value and false if it is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	return d.rb.PopBack()
}

// PopFront pops an item from the front of the deque, returning the default value and false if it is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	return d.rb.PopFront()
}

// Clear removes all items from the deque, keeping its current capacity.
func (d *Deque[T]) Clear() {
	d.rb.Reset()
}

// Iter calls fn on each item in the deque, starting from the front.
func (d *Deque[T]) Iter(fn IterFunc[T]) {
	d.rb.Iter(ringbuf.IterFunc[T](fn))
}
