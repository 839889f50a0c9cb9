package search

import (
	"container/heap"

	"clickgrid/internal/board"
)

// pqNode is one entry in a priority-queue strategy's frontier.
type pqNode struct {
	priority int
	seq      int // insertion order, breaks priority ties deterministically
	board    *board.Board
}

// priorityHeap is a min-heap on (priority, seq) implementing
// container/heap so Pop always returns the best (lowest-priority) node.
type priorityHeap []*pqNode

func (h priorityHeap) Len() int { return len(h) }
func (h priorityHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h priorityHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *priorityHeap) Push(x any)   { *h = append(*h, x.(*pqNode)) }
func (h *priorityHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// boundedPQ is a priority queue capped at maxSize; pushing past the cap
// evicts the single worst-priority (highest-priority-value) entry —
// the counterpart to BFS's FIFO head eviction, for strategies that order
// their frontier by priority rather than arrival order.
type boundedPQ struct {
	h       priorityHeap
	maxSize int
	nextSeq int
}

func newBoundedPQ(maxSize int) *boundedPQ {
	return &boundedPQ{maxSize: maxSize}
}

func (q *boundedPQ) push(priority int, b *board.Board) {
	heap.Push(&q.h, &pqNode{priority: priority, seq: q.nextSeq, board: b})
	q.nextSeq++
	if len(q.h) > q.maxSize {
		q.evictWorst()
	}
}

func (q *boundedPQ) evictWorst() {
	worst := 0
	for i := 1; i < len(q.h); i++ {
		if q.h[i].priority > q.h[worst].priority ||
			(q.h[i].priority == q.h[worst].priority && q.h[i].seq > q.h[worst].seq) {
			worst = i
		}
	}
	heap.Remove(&q.h, worst)
}

func (q *boundedPQ) pop() *pqNode {
	return heap.Pop(&q.h).(*pqNode)
}

func (q *boundedPQ) empty() bool { return len(q.h) == 0 }
