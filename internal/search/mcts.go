package search

import (
	"context"
	"math"
	"math/rand"
	"time"

	"clickgrid/internal/board"
	"clickgrid/internal/heuristic"
)

// mctsNode is one tree node: the board reached to get here, the move that
// led to it, and bookkeeping for UCB1 selection.
type mctsNode struct {
	parent   *mctsNode
	move     board.Position
	board    *board.Board
	children []*mctsNode
	visits   int
	reward   float64
	untried  []board.Position
}

const ucbEpsilon = 1e-9

// ucb1 scores a child for selection: exploitation (mean reward) plus an
// exploration bonus shaped by the parent's visit count.
func ucb1(child *mctsNode, parentVisits int) float64 {
	mean := child.reward / (float64(child.visits) + ucbEpsilon)
	explore := math.Sqrt2 * math.Sqrt(math.Log(float64(parentVisits)+1)/(float64(child.visits)+ucbEpsilon))
	return mean + explore
}

// MCTS runs Monte Carlo tree search until cfg.Timeout elapses (or ctx is
// cancelled). If any rollout reaches a solved board, that board is
// returned immediately. Otherwise, once time runs out, the board at the
// most-visited root child is returned as a best-effort result, or nil if
// the root was never expanded.
func MCTS(ctx context.Context, b *board.Board, cfg Config) *board.Board {
	rng := rand.New(rand.NewSource(cfg.Seed))
	deadline := time.Now().Add(cfg.Timeout)

	root := &mctsNode{board: b, untried: clickable(b)}

	for time.Now().Before(deadline) && ctx.Err() == nil {
		cur := root
		for len(cur.untried) == 0 && len(cur.children) > 0 {
			cur = selectUCB1Child(cur)
		}

		var simFrom *mctsNode
		if len(cur.untried) > 0 {
			move := cur.untried[0]
			cur.untried = cur.untried[1:]

			nb, changed := expand(cur.board, move)
			if changed {
				child := &mctsNode{parent: cur, move: move, board: nb, untried: clickable(nb)}
				cur.children = append(cur.children, child)
				simFrom = child
			}
			// A no-op click produces no child; this iteration ends here
			// with no simulation, per spec.md §4.4's MCTS contract.
		}
		if simFrom == nil {
			continue
		}

		reward, solvedBoard := rollout(rng, simFrom.board, cfg.MaxSteps)
		backprop(simFrom, reward)

		if solvedBoard != nil {
			return solvedBoard
		}
	}

	return mostVisitedChild(root)
}

func selectUCB1Child(n *mctsNode) *mctsNode {
	best := n.children[0]
	bestScore := ucb1(best, n.visits)
	for _, c := range n.children[1:] {
		if score := ucb1(c, n.visits); score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// rollout plays uniformly-random legal clicks from b for up to maxPlies
// steps, stopping early if the board is solved or has no legal clicks
// left. It returns the terminal reward (1 for solved, otherwise
// 1/(1+incorrect cells)) and, if the board ended up solved, that board.
func rollout(rng *rand.Rand, b *board.Board, maxPlies int) (float64, *board.Board) {
	cur := b
	for ply := 0; ply < maxPlies; ply++ {
		if cur.IsSolved() {
			return 1, cur
		}
		moves := clickable(cur)
		if len(moves) == 0 {
			break
		}
		p := moves[rng.Intn(len(moves))]
		nb, changed := expand(cur, p)
		if changed {
			cur = nb
		}
	}
	if cur.IsSolved() {
		return 1, cur
	}
	return 1 / float64(1+heuristic.Wrong(cur)), nil
}

func backprop(n *mctsNode, reward float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		cur.reward += reward
	}
}

func mostVisitedChild(root *mctsNode) *board.Board {
	var best *mctsNode
	for _, c := range root.children {
		if best == nil || c.visits > best.visits {
			best = c
		}
	}
	if best == nil {
		return nil
	}
	return best.board
}
