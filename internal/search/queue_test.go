package search

import (
	"testing"

	"clickgrid/internal/board"
)

func TestBoundedPQPopsInPriorityOrder(t *testing.T) {
	q := newBoundedPQ(10)
	q.push(5, board.New(1, 1))
	q.push(1, board.New(1, 1))
	q.push(3, board.New(1, 1))

	var order []int
	for !q.empty() {
		order = append(order, q.pop().priority)
	}
	want := []int{1, 3, 5}
	for i, p := range want {
		if order[i] != p {
			t.Fatalf("pop order = %v, want %v", order, want)
		}
	}
}

func TestBoundedPQEvictsWorstOnOverflow(t *testing.T) {
	q := newBoundedPQ(2)
	q.push(1, board.New(1, 1))
	q.push(2, board.New(1, 1))
	q.push(10, board.New(1, 1)) // should be evicted immediately: it's the worst

	if got := len(q.h); got != 2 {
		t.Fatalf("queue size = %d, want 2 after eviction", got)
	}
	first := q.pop()
	second := q.pop()
	if first.priority != 1 || second.priority != 2 {
		t.Fatalf("survivors = %d, %d; want 1, 2", first.priority, second.priority)
	}
}
