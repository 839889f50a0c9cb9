// Package search implements the multi-strategy solver: uninformed DFS and
// BFS, greedy best-first search, weighted A* and an enhanced variant,
// IDA*, and MCTS. Every strategy takes an initial board plus a Config and
// returns either a solved board or nil, except MCTS, which returns its
// most-visited root child's board (possibly unsolved) when no rollout
// solved the board before its timeout.
package search

import (
	"time"

	"clickgrid/internal/board"
	"clickgrid/internal/heuristic"
	"clickgrid/internal/movegen"
	"clickgrid/internal/rules"
)

// Config bounds a single strategy run. Every strategy reads it read-only.
type Config struct {
	MaxSteps     int           // depth/move-count cutoff shared by all strategies
	MaxQueueSize int           // frontier cap for BFS/GBFS/A*/EA* (default 100,000)
	Timeout      time.Duration // wall-clock budget for IDA* and MCTS (default 60s)
	Hints        []heuristic.Hint
	Seed         int64 // MCTS rollout PRNG seed, for reproducible tests
}

// DefaultConfig mirrors spec.md §5's defaults.
func DefaultConfig() Config {
	return Config{
		MaxSteps:     100,
		MaxQueueSize: 100_000,
		Timeout:      60 * time.Second,
		Seed:         1,
	}
}

// dedupKey is the (state hash, depth) pair BFS/GBFS/A*/EA* dedup on, so a
// state reached again at a shallower depth is not mistaken for one
// already fully explored at a deeper one.
type dedupKey struct {
	hash  uint64
	depth int
}

// expand clones b, applies the click at p, and reports the resulting
// board and whether the click actually changed anything. Callers should
// skip no-op moves (spec.md's Open Question on DFS "try even if no
// change" — the spec mandates skipping, since the move counter still
// advances and would pollute max_steps accounting).
func expand(b *board.Board, p board.Position) (*board.Board, bool) {
	nb := b.Clone()
	changed := rules.ApplyClick(nb, p.Row, p.Col)
	return nb, changed
}

func clickable(b *board.Board) []board.Position {
	return movegen.Enumerate(b)
}
