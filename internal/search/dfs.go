package search

import (
	"context"

	"clickgrid/internal/board"
)

// DFS explores the click-induced state graph depth-first, pruning at
// MaxSteps and deduplicating on a plain state hash (no depth component —
// once a state is visited it is never re-entered, regardless of depth).
// It tracks the best (fewest-move) solution seen across the whole
// recursion and returns it once the tree is exhausted or ctx is
// cancelled by the coordinator.
func DFS(ctx context.Context, b *board.Board, cfg Config) *board.Board {
	visited := make(map[uint64]bool)
	var best *board.Board

	var recurse func(cur *board.Board)
	recurse = func(cur *board.Board) {
		if ctx.Err() != nil {
			return
		}
		if cur.Moves.N() > cfg.MaxSteps {
			return
		}
		if cur.IsSolved() {
			if best == nil || cur.Moves.N() < best.Moves.N() {
				best = cur
			}
			return
		}

		h := cur.Hash()
		if visited[h] {
			return
		}
		visited[h] = true

		for _, p := range clickable(cur) {
			if ctx.Err() != nil {
				return
			}
			nb, changed := expand(cur, p)
			if !changed {
				continue
			}
			recurse(nb)
		}
	}

	recurse(b)
	return best
}
