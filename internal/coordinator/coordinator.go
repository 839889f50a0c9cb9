// Package coordinator launches every enabled search strategy concurrently,
// races them for the first K solved boards, and cancels whatever is still
// running once it has enough (spec.md §4.5).
package coordinator

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"clickgrid/internal/applog"
	"clickgrid/internal/board"
	"clickgrid/internal/search"
)

// StrategyFunc is the contract every strategy engine satisfies: read-only
// share the initial board, return a board or nil. Only a returned board
// that is solved counts as a solution; MCTS may return an unsolved
// best-effort board, which Run does not collect.
type StrategyFunc func(ctx context.Context, b *board.Board, cfg search.Config) *board.Board

// Strategy names a StrategyFunc for logging and result reporting.
type Strategy struct {
	Name string
	Run  StrategyFunc
}

// AllStrategies returns every strategy engine the spec defines, in the
// order spec.md §2 lists them.
func AllStrategies() []Strategy {
	return []Strategy{
		{Name: "dfs", Run: search.DFS},
		{Name: "bfs", Run: search.BFS},
		{Name: "gbfs", Run: search.GBFS},
		{Name: "astar", Run: func(ctx context.Context, b *board.Board, cfg search.Config) *board.Board {
			return search.AStar(ctx, b, cfg, search.WrongHeuristic)
		}},
		{Name: "eastar", Run: func(ctx context.Context, b *board.Board, cfg search.Config) *board.Board {
			return search.AStar(ctx, b, cfg, search.EnhancedHeuristic)
		}},
		{Name: "idastar", Run: func(ctx context.Context, b *board.Board, cfg search.Config) *board.Board {
			return search.IDAStar(ctx, b, cfg, search.WrongHeuristic)
		}},
		{Name: "mcts", Run: search.MCTS},
	}
}

// Config bounds a coordinator run.
type Config struct {
	Search search.Config
	K      int // solutions to collect before cancelling the rest (historically 2 or 4)
	// Grace, when non-zero, delays cancellation by this long after the
	// Kth solution arrives, and keeps accepting solutions arriving during
	// that window on top of the first K, so a slower-but-shorter solution
	// landing just after can still be collected and picked up by Best
	// (supplements multi_solver.py's wait_after_first; zero preserves
	// spec.md §4.5's literal immediate cancellation and hard K cap).
	Grace time.Duration
}

// Result pairs a strategy name with whatever board it returned.
type Result struct {
	Strategy string
	Board    *board.Board
}

type workerMsg struct {
	name  string
	board *board.Board
}

// Run spawns one goroutine per strategy under ctx, collects solved boards
// as they arrive, and cancels the rest once K have been collected. If
// cfg.Grace is set, reaching K opens a grace window instead of cancelling
// immediately: solutions arriving during that window are collected too
// (beyond the K cap), so a shorter solution landing just after the Kth
// can still win in Best, and cancellation fires when the window elapses.
// It returns every solved board collected, in nondeterministic arrival
// order — callers order-insensitively pick the best one (see Best).
func Run(ctx context.Context, initial *board.Board, cfg Config, strategies []Strategy) []Result {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultsCh := make(chan workerMsg, len(strategies))

	var g errgroup.Group
	for _, st := range strategies {
		st := st
		g.Go(func() error {
			runWorker(runCtx, st, initial, cfg.Search, resultsCh)
			return nil
		})
	}

	allDone := make(chan struct{})
	go func() {
		g.Wait()
		close(allDone)
	}()

	var collected []Result
	var graceTimer <-chan time.Time
	graceOpen := false
	for {
		select {
		case m := <-resultsCh:
			if m.board != nil && m.board.IsSolved() && (len(collected) < cfg.K || graceOpen) {
				collected = append(collected, Result{Strategy: m.name, Board: m.board})
				applog.Logger().Info().Str("strategy", m.name).Int("moves", m.board.Moves.N()).
					Int("collected", len(collected)).Msg("solution collected")
				if len(collected) >= cfg.K && graceTimer == nil && !graceOpen {
					if cfg.Grace <= 0 {
						cancel()
					} else {
						graceOpen = true
						graceTimer = time.After(cfg.Grace)
					}
				}
			}
		case <-graceTimer:
			cancel()
			graceTimer = nil
			graceOpen = false
		case <-allDone:
			// Every worker has sent before exiting; drain what is still
			// buffered before returning.
			if len(resultsCh) == 0 {
				return collected
			}
		}
	}
}

// runWorker runs one strategy to completion (or cancellation) and always
// reports a result, even on panic — a worker crash is logged and treated
// as "no solution from that strategy," never propagated to peers
// (spec.md §7).
func runWorker(ctx context.Context, st Strategy, initial *board.Board, cfg search.Config, out chan<- workerMsg) {
	defer func() {
		if r := recover(); r != nil {
			applog.Logger().Error().Str("strategy", st.Name).Interface("panic", r).Msg("worker panicked")
			out <- workerMsg{name: st.Name}
		}
	}()

	start := time.Now()
	solved := st.Run(ctx, initial, cfg)
	applog.Logger().Debug().Str("strategy", st.Name).Dur("elapsed", time.Since(start)).
		Bool("solved", solved != nil).Msg("worker finished")
	out <- workerMsg{name: st.Name, board: solved}
}

// Best returns the fewest-move board among results, or nil if results is
// empty — the top-level caller's selection rule (spec.md §4.5,
// "coordinator minimality" in §8).
func Best(results []Result) *board.Board {
	var best *board.Board
	for _, r := range results {
		if best == nil || r.Board.Moves.N() < best.Moves.N() {
			best = r.Board
		}
	}
	return best
}
