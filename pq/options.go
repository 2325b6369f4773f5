package pq

import (
	"github.com/dsdecmp/collections/deque"
	"github.com/dsdecmp/collections/log"
	"github.com/dsdecmp/collections/maths"
)

const (
	// DefaultDegree is the B-tree degree used to order buckets when Options.Degree is unset.
	DefaultDegree = 32

	// minDegree is the smallest degree the B-tree accepts.
	minDegree = 2

	// maxRecycledCapacity is the largest bucket capacity which will be returned to the free list; larger buckets are
	// left for the GC so one burst at a single priority doesn't pin its memory.
	maxRecycledCapacity = 1024
)

// Options encapsulates the options available when creating a queue. The zero value is valid.
type Options struct {
	// Degree is the degree of the B-tree which orders the buckets, values below two are raised to two.
	Degree int

	// BucketCapacity is the initial capacity of each newly allocated bucket, defaults to deque.DefaultInitialCapacity.
	BucketCapacity int

	// BucketPoolSize is the number of emptied buckets kept for reuse by priorities seen later. Zero (the default)
	// disables recycling.
	BucketPoolSize int

	// Logger is the passed Logger struct that implements the Log method for logger the user wants to use.
	Logger log.Logger
}

// defaults fills in unset values and clamps the rest to their valid ranges.
func (o *Options) defaults() {
	if o.Degree == 0 {
		o.Degree = DefaultDegree
	}

	if o.BucketCapacity == 0 {
		o.BucketCapacity = deque.DefaultInitialCapacity
	}

	o.Degree = maths.Max(minDegree, o.Degree)
	o.BucketCapacity = maths.Max(1, o.BucketCapacity)
	o.BucketPoolSize = maths.Max(0, o.BucketPoolSize)
}
