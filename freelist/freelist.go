// Package freelist provides a bounded pool of reusable objects. The priority queue keeps emptied bucket storage in one
// so that priorities which come and go do not allocate a new bucket every time.
package freelist

// FreeList is a pool of objects which one can borrow items from. It has the advantage over sync.Pool that the user can
// control how many objects are in the pool, and that pooled objects are never dropped by the GC.
//
// NOTE: Internally we use a channel as a buffer, neither TryGet nor TryPut ever block.
type FreeList[T any] struct {
	list chan T
}

// NewFreeList creates a new, empty free list which can hold up to size objects. A size of zero creates a list which
// never holds anything, every TryPut is rejected and every TryGet misses.
func NewFreeList[T any](size int) FreeList[T] {
	if size < 0 {
		size = 0
	}

	return FreeList[T]{list: make(chan T, size)}
}

// TryGet returns an object if there is one available in the freelist or the default value of T if not. If the bool is
// false then the value should not be used in any way.
func (f *FreeList[T]) TryGet() (T, bool) {
	select {
	case v := <-f.list:
		return v, true
	default:
		return *new(T), false
	}
}

// TryPut returns v to the freelist if there is room for it, reporting whether it was accepted. A rejected object is
// left for the GC.
func (f *FreeList[T]) TryPut(v T) bool {
	select {
	case f.list <- v:
		return true
	default:
		return false
	}
}

// Count returns the number of available objects currently in the list.
func (f *FreeList[T]) Count() int {
	return len(f.list)
}

// Size returns the maximum number of objects that can be in the list.
func (f *FreeList[T]) Size() int {
	return cap(f.list)
}
