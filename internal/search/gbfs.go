package search

import (
	"context"

	"clickgrid/internal/board"
	"clickgrid/internal/heuristic"
)

// GBFS orders its frontier by h(b) alone, with no g cost — greedy
// best-first search. Dedup and the frontier cap/eviction policy match
// BFS's (hash, depth)-keyed scheme, but eviction drops the worst-priority
// entry rather than the oldest, since the frontier here is priority
// ordered rather than FIFO.
func GBFS(ctx context.Context, b *board.Board, cfg Config) *board.Board {
	am := NewApproxMap()

	pq := newBoundedPQ(cfg.MaxQueueSize)
	pq.push(memoWrong(am, b), b)
	visited := map[dedupKey]bool{{hash: b.Hash(), depth: b.Moves.N()}: true}

	for !pq.empty() {
		if ctx.Err() != nil {
			return nil
		}

		cur := pq.pop().board
		if cur.Moves.N() >= cfg.MaxSteps {
			continue
		}
		if cur.IsSolved() {
			return cur
		}

		for _, p := range clickable(cur) {
			nb, changed := expand(cur, p)
			if !changed {
				continue
			}

			key := dedupKey{hash: nb.Hash(), depth: nb.Moves.N()}
			if visited[key] {
				continue
			}
			visited[key] = true

			pq.push(memoWrong(am, nb), nb)
		}
	}
	return nil
}

// memoWrong is heuristic.Wrong with an ApproxMap fast path: a state whose
// wrong-cell count was already computed earlier in this search epoch is
// read back instead of recounted.
func memoWrong(am *ApproxMap, b *board.Board) int {
	h := b.Hash()
	if v, ok := am.Get(h); ok {
		return v
	}
	v := heuristic.Wrong(b)
	am.Insert(h, v)
	return v
}
