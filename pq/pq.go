// Package pq exposes a generic reverse priority queue; the value with the lowest priority is dequeued first and values
// which share a priority are dequeued in the order they were enqueued.
//
// Values are grouped into one FIFO bucket per distinct priority, and the buckets are kept ordered by priority in a
// B-tree. Buckets are created on first use and removed as soon as their last value is dequeued.
//
// NOTE: A 'ReversePriorityQueue' is not safe for concurrent use, callers sharing one between goroutines must provide
// their own locking.
package pq

import (
	"cmp"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/dsdecmp/collections/deque"
	"github.com/dsdecmp/collections/freelist"
	"github.com/dsdecmp/collections/log"
)

// LessFunc reports whether priority a sorts before priority b. It must describe a strict weak ordering; two
// priorities for which neither is less than the other share a bucket.
type LessFunc[P any] func(a, b P) bool

// ReversePriorityQueue is a min-priority queue with FIFO ordering between values of equal priority.
type ReversePriorityQueue[P, V any] struct {
	buckets *btree.BTreeG[bucket[P, V]]
	pool    freelist.FreeList[*deque.Deque[V]]
	options Options
	logger  log.WrappedLogger
	count   int
}

// NewReversePriorityQueue creates an empty queue ordered by the natural ordering of P. Floating point NaN priorities
// share a single bucket which sorts before every other priority.
func NewReversePriorityQueue[P constraints.Ordered, V any](options Options) *ReversePriorityQueue[P, V] {
	return NewReversePriorityQueueFunc[P, V](cmp.Less[P], options)
}

// NewReversePriorityQueueFunc creates an empty queue ordered by the given less function, which must not be nil.
func NewReversePriorityQueueFunc[P, V any](less LessFunc[P], options Options) *ReversePriorityQueue[P, V] {
	if less == nil {
		panic("pq: nil less function")
	}

	options.defaults()

	return &ReversePriorityQueue[P, V]{
		buckets: btree.NewG[bucket[P, V]](options.Degree, func(a, b bucket[P, V]) bool {
			return less(a.priority, b.priority)
		}),
		pool:    freelist.NewFreeList[*deque.Deque[V]](options.BucketPoolSize),
		options: options,
		logger:  log.NewWrappedLogger(options.Logger),
	}
}

// Count returns the number of values in the queue.
func (q *ReversePriorityQueue[P, V]) Count() int {
	return q.count
}

// Empty returns whether there are no values in the queue.
func (q *ReversePriorityQueue[P, V]) Empty() bool {
	return q.count == 0
}

// Enqueue adds value to the back of the bucket for priority, creating the bucket if this is the first value with that
// priority.
func (q *ReversePriorityQueue[P, V]) Enqueue(priority P, value V) {
	b, ok := q.buckets.Get(bucket[P, V]{priority: priority})
	if !ok {
		b = bucket[P, V]{priority: priority, values: q.newValues()}
		q.buckets.ReplaceOrInsert(b)

		if q.logger.Enabled(log.LevelTrace) {
			q.logger.Tracef("(pq) Created bucket for priority '%v'", priority)
		}
	}

	b.values.PushBack(value)
	q.count++
}

// Peek returns the oldest value with the lowest priority, and that priority, without removing it. An
// '*EmptyQueueError' is returned if the queue is empty.
//
// NOTE: The priority returned is the one the bucket was created with, which only differs from the priority given to
// Enqueue when a LessFunc treats distinct values as equal.
func (q *ReversePriorityQueue[P, V]) Peek() (V, P, error) {
	b, ok := q.min()
	if !ok {
		return *new(V), *new(P), &EmptyQueueError{Op: "peek"}
	}

	value, _ := b.values.PeekFront()

	return value, b.priority, nil
}

// Dequeue removes and returns the oldest value with the lowest priority, and that priority. An '*EmptyQueueError' is
// returned, and the queue left untouched, if the queue is empty.
func (q *ReversePriorityQueue[P, V]) Dequeue() (V, P, error) {
	b, ok := q.min()
	if !ok {
		return *new(V), *new(P), &EmptyQueueError{Op: "dequeue"}
	}

	value, _ := b.values.PopFront()

	if b.values.Len() == 0 {
		q.buckets.DeleteMin()
		q.recycle(b.values)

		if q.logger.Enabled(log.LevelTrace) {
			q.logger.Tracef("(pq) Retired bucket for priority '%v'", b.priority)
		}
	}

	q.count--

	return value, b.priority, nil
}

// Drain removes all items from the queue, in queue order, running the given function on each item. In the event of an
// error, dequeuing stops early and the error is returned; the item passed to the failing call is not re-queued.
func (q *ReversePriorityQueue[P, V]) Drain(fn func(item Item[P, V]) error) error {
	for !q.Empty() {
		value, priority, err := q.Dequeue()
		if err != nil {
			return err
		}

		if err := fn(Item[P, V]{Payload: value, Priority: priority}); err != nil {
			return err
		}
	}

	return nil
}

// Clear removes every value from the queue.
func (q *ReversePriorityQueue[P, V]) Clear() {
	q.logger.Debugf("(pq) Clearing %d values from %d buckets", q.count, q.buckets.Len())

	q.buckets.Ascend(func(b bucket[P, V]) bool {
		q.recycle(b.values)
		return true
	})

	q.buckets.Clear(false)
	q.count = 0
}

// min returns the bucket with the lowest priority, or false if the queue is empty.
func (q *ReversePriorityQueue[P, V]) min() (bucket[P, V], bool) {
	if q.count == 0 {
		return bucket[P, V]{}, false
	}

	return q.buckets.Min()
}
