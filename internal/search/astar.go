package search

import (
	"context"

	"clickgrid/internal/board"
	"clickgrid/internal/heuristic"
)

// HeuristicFunc scores a board for priority-ordered search.
type HeuristicFunc func(b *board.Board, hints []heuristic.Hint) int

// WrongHeuristic is h_wrong: plain incorrect-cell count, ignoring hints.
func WrongHeuristic(b *board.Board, _ []heuristic.Hint) int { return heuristic.Wrong(b) }

// EnhancedHeuristic is h_enhanced: incorrect-cell count weighted by the
// optional bomb/target hints.
func EnhancedHeuristic(b *board.Board, hints []heuristic.Hint) int {
	return heuristic.Enhanced(b, hints)
}

// AStar is the branch-and-bound strategy ordered by g + h, where g is
// moves-so-far and h is supplied by heuristicFn (WrongHeuristic for plain
// A*, EnhancedHeuristic for the Enhanced-A* variant). Dedup is keyed by
// (hash, depth); the frontier is capped with worst-priority eviction.
// Neither heuristic is admissible in the strong sense, so the result is
// an approximation rather than a provably optimal solution (spec.md
// §4.3).
func AStar(ctx context.Context, b *board.Board, cfg Config, heuristicFn HeuristicFunc) *board.Board {
	am := NewApproxMap()
	memoH := func(nb *board.Board) int {
		h := nb.Hash()
		if v, ok := am.Get(h); ok {
			return v
		}
		v := heuristicFn(nb, cfg.Hints)
		am.Insert(h, v)
		return v
	}

	pq := newBoundedPQ(cfg.MaxQueueSize)
	pq.push(memoH(b), b)
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

			priority := nb.Moves.N() + memoH(nb)
			pq.push(priority, nb)
		}
	}
	return nil
}
