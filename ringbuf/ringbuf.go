// Package ringbuf provides a fixed capacity circular buffer which backs the growable deque used for queue buckets.
package ringbuf

// mod returns numerator % denominator where the result is always non-negative (i.e. -5 % 3 is 1, not -2), which is
// the definition we need when stepping an index backwards past zero.
func mod(numerator, denominator int) int {
	m := numerator % denominator
	if m < 0 {
		m += denominator
	}

	return m
}

// IterFunc is a function which will be executed for every element in the Ringbuf.
type IterFunc[T any] func(v T)

// Ringbuf is a circular buffer of items with type T. It can hold a constant number of items (specifically:
// len(items)-1).
type Ringbuf[T any] struct {
	// head points to the first element in the ringbuf.
	head int

	// tail points to the next free slot at the end of the ringbuf.
	tail int

	items []T
}

// NewRingbuf creates a Ringbuf of T with the specified capacity.
func NewRingbuf[T any](capacity int) Ringbuf[T] {
	// head == tail means empty, so one slot is always left unused and we need capacity+1 of them.
	return Ringbuf[T]{items: make([]T, capacity+1)}
}

// Full returns whether or not it is possible to push another item.
func (r *Ringbuf[T]) Full() bool {
	return r.Len() >= r.Cap()
}

// Empty returns whether or not there are no items in the ringbuf.
func (r *Ringbuf[T]) Empty() bool {
	return r.head == r.tail
}

// Cap returns the capacity of the ringbuf.
func (r *Ringbuf[T]) Cap() int {
	return len(r.items) - 1
}

// Len returns the number of items in the ringbuf currently.
func (r *Ringbuf[T]) Len() int {
	// When wrapped, count from head to the end of the slice and then from the start up to tail.
	if r.head > r.tail {
		return len(r.items) - r.head + r.tail
	}

	return r.tail - r.head
}

// PushFront adds v to the front of the ringbuf, returning false if the ringbuf is full.
func (r *Ringbuf[T]) PushFront(v T) bool {
	if r.Full() {
		return false
	}

	index := mod(r.head-1, len(r.items))

	r.items[index] = v
	r.head = index

	return true
}

// PushBack adds v to the back of the ringbuf, returning false if the ringbuf is full.
func (r *Ringbuf[T]) PushBack(v T) bool {
	if r.Full() {
		return false
	}

	r.items[r.tail] = v
	r.tail = mod(r.tail+1, len(r.items))

	return true
}

// PeekFront returns the value at the front of the ringbuf without removing it. If the ringbuf is empty then it returns
// the default value and false.
func (r *Ringbuf[T]) PeekFront() (T, bool) {
	if r.Empty() {
		return *new(T), false
	}

	return r.items[r.head], true
}

// PopFront returns the value at the front of the ringbuf and removes it. If the ringbuf is empty then it returns the
// default value and false for the bool return value.
//
// NOTE: The vacated slot is zeroed so the ringbuf doesn't keep the popped value reachable.
func (r *Ringbuf[T]) PopFront() (T, bool) {
	if r.Empty() {
		return *new(T), false
	}

	v := r.items[r.head]

	r.items[r.head] = *new(T)
	r.head = mod(r.head+1, len(r.items))

	return v, true
}

// PopBack returns the value at the back of the ringbuf and removes it. If the ringbuf is empty then it returns the
// default value and false for the bool return value.
func (r *Ringbuf[T]) PopBack() (T, bool) {
	if r.Empty() {
		return *new(T), false
	}

	var (
		index = mod(r.tail-1, len(r.items))
		v     = r.items[index]
	)

	r.items[index] = *new(T)
	r.tail = index

	return v, true
}

// Reset empties the ringbuf in place, zeroing every slot but keeping the allocated capacity.
func (r *Ringbuf[T]) Reset() {
	for i := range r.items {
		r.items[i] = *new(T)
	}

	r.head, r.tail = 0, 0
}

// Iter iterates through all the elements in the Ringbuf from front to back, calling fn on each one.
func (r *Ringbuf[T]) Iter(fn IterFunc[T]) {
	var (
		start = r.head
		end   = r.tail
	)

	// Wrapped; walk to the end of the slice first, then from the start up to tail below.
	if r.head > r.tail {
		end = len(r.items)
	}

	for i := start; i < end; i++ {
		fn(r.items[i])
	}

	if r.tail > r.head {
		return
	}

	for i := 0; i < r.tail; i++ {
		fn(r.items[i])
	}
}
