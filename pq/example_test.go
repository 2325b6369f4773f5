package pq_test

import (
	"errors"
	"fmt"

	"github.com/dsdecmp/collections/pq"
)

func ExampleReversePriorityQueue() {
	queue := pq.NewReversePriorityQueue[int, string](pq.Options{})

	queue.Enqueue(5, "a")
	queue.Enqueue(3, "b")
	queue.Enqueue(5, "c")

	for {
		value, priority, err := queue.Dequeue()
		if errors.Is(err, pq.ErrEmptyQueue) {
			break
		}

		fmt.Println(priority, value)
	}

	// Output:
	// 3 b
	// 5 a
	// 5 c
}

func ExampleReversePriorityQueue_Drain() {
	type symbol struct {
		char byte
		freq int
	}

	queue := pq.NewReversePriorityQueue[int, symbol](pq.Options{BucketPoolSize: 8})

	for _, s := range []symbol{{'a', 4}, {'b', 1}, {'c', 4}, {'d', 2}} {
		queue.Enqueue(s.freq, s)
	}

	_ = queue.Drain(func(item pq.Item[int, symbol]) error {
		fmt.Printf("%c:%d\n", item.Payload.char, item.Priority)
		return nil
	})

	// Output:
	// b:1
	// d:2
	// a:4
	// c:4
}

func ExampleNewReversePriorityQueueFunc() {
	type deadline struct {
		day, hour int
	}

	queue := pq.NewReversePriorityQueueFunc[deadline, string](func(a, b deadline) bool {
		if a.day != b.day {
			return a.day < b.day
		}

		return a.hour < b.hour
	}, pq.Options{})

	queue.Enqueue(deadline{day: 2, hour: 9}, "review")
	queue.Enqueue(deadline{day: 1, hour: 17}, "release")
	queue.Enqueue(deadline{day: 1, hour: 9}, "standup")

	value, _, _ := queue.Peek()
	fmt.Println(value, queue.Count())

	// Output:
	// standup 3
}
