package search

import (
	"context"

	"clickgrid/internal/board"
)

// BFS explores the state graph breadth-first with a FIFO frontier keyed
// by (state hash, depth) — a state may be re-entered at a different
// depth than it was first seen at. The frontier is capped at
// cfg.MaxQueueSize; once full, the oldest queued state is dropped to make
// room for the new one (a lossy cap, an accepted completeness compromise
// for bounded memory).
func BFS(ctx context.Context, b *board.Board, cfg Config) *board.Board {
	type queued struct {
		board *board.Board
	}

	queue := make([]queued, 0, 256)
	queue = append(queue, queued{board: b})
	visited := map[dedupKey]bool{{hash: b.Hash(), depth: b.Moves.N()}: true}

	for len(queue) > 0 {
		if ctx.Err() != nil {
			return nil
		}

		cur := queue[0].board
		queue = queue[1:]

		if cur.IsSolved() {
			return cur
		}
		if cur.Moves.N() >= cfg.MaxSteps {
			continue
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

			queue = append(queue, queued{board: nb})
			if len(queue) > cfg.MaxQueueSize {
				queue = queue[1:]
			}
		}
	}
	return nil
}
