package pq

import (
	"github.com/dsdecmp/collections/deque"
)

// bucket holds every queued value sharing one priority, oldest at the front. A bucket is only present in the tree
// while it holds at least one value.
type bucket[P, V any] struct {
	priority P
	values   *deque.Deque[V]
}

// newValues returns storage for a new bucket, preferring a recycled one.
func (q *ReversePriorityQueue[P, V]) newValues() *deque.Deque[V] {
	if values, ok := q.pool.TryGet(); ok {
		return values
	}

	return deque.NewDequeWithCapacity[V](q.options.BucketCapacity)
}

// recycle offers the storage of a bucket which has been removed from the tree back to the free list.
func (q *ReversePriorityQueue[P, V]) recycle(values *deque.Deque[V]) {
	if q.pool.Size() == 0 || values.Cap() > maxRecycledCapacity {
		return
	}

	if values.Len() != 0 {
		values.Clear()
	}

	q.pool.TryPut(values)
}
