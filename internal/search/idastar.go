package search

import (
	"context"
	"math"
	"time"

	"clickgrid/internal/board"
)

// IDAStar is iterative-deepening A*: each iteration is a depth-first
// search bounded by an f-cost threshold, starting at h(initial) and
// advancing to the minimum f that exceeded the previous bound. Dedup is
// by path set — state hashes on the current DFS branch only — so the
// same state may be revisited across different branches, just never
// cycled back into on one. A wall-clock timeout (cfg.Timeout) unwinds the
// search gracefully once elapsed. Stops when a solution is found, the
// timeout fires, the next bound is infinite (nothing left to explore),
// or the bound exceeds cfg.MaxSteps.
func IDAStar(ctx context.Context, b *board.Board, cfg Config, heuristicFn HeuristicFunc) *board.Board {
	deadline := time.Now().Add(cfg.Timeout)
	onPath := map[uint64]bool{b.Hash(): true}

	bound := heuristicFn(b, cfg.Hints)
	for bound <= cfg.MaxSteps {
		if ctx.Err() != nil || time.Now().After(deadline) {
			return nil
		}

		nextBound := math.MaxInt
		var solved *board.Board
		timedOut := false

		var dfs func(cur *board.Board)
		dfs = func(cur *board.Board) {
			if solved != nil || timedOut {
				return
			}
			if time.Now().After(deadline) || ctx.Err() != nil {
				timedOut = true
				return
			}

			f := cur.Moves.N() + heuristicFn(cur, cfg.Hints)
			if f > bound {
				if f < nextBound {
					nextBound = f
				}
				return
			}
			if cur.IsSolved() {
				solved = cur
				return
			}
			if cur.Moves.N() >= cfg.MaxSteps {
				return
			}

			for _, p := range clickable(cur) {
				nb, changed := expand(cur, p)
				if !changed {
					continue
				}
				h := nb.Hash()
				if onPath[h] {
					continue
				}
				onPath[h] = true
				dfs(nb)
				delete(onPath, h)
				if solved != nil || timedOut {
					return
				}
			}
		}

		dfs(b)
		if solved != nil {
			return solved
		}
		if timedOut {
			return nil
		}
		if nextBound == math.MaxInt {
			return nil
		}
		bound = nextBound
	}
	return nil
}
