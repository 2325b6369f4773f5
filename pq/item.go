package pq

// Item encapsulates a payload and the priority it was dequeued with.
type Item[P, V any] struct {
	Payload  V
	Priority P
}
