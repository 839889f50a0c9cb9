// Package rules implements the deterministic board state transition
// function invoked by a click: the rule engine for the five modifier
// families (directional fill, flood toggle, 3x3 bomb paint, and the four
// rotating arrows).
package rules

import (
	"clickgrid/internal/board"
)

// ApplyClick mutates b in place per the modifier at (row, col) and reports
// whether the board changed. The move is appended to b's move log
// regardless of outcome — move-log integrity does not depend on effect.
func ApplyClick(b *board.Board, row, col int) bool {
	b.Moves.Add(row, col)

	f := *b.At(row, col)
	switch f.Modifier {
	case board.ModArrowUp:
		return fireArrow(b, row, col, f.Color, -1, 0)
	case board.ModArrowDown:
		return fireArrow(b, row, col, f.Color, 1, 0)
	case board.ModArrowLeft:
		return fireArrow(b, row, col, f.Color, 0, -1)
	case board.ModArrowRight:
		return fireArrow(b, row, col, f.Color, 0, 1)
	case board.ModFlood:
		return applyFlood(b, row, col, f.Color)
	case board.ModBomb:
		return applyBomb(b, row, col, f.Color)
	case board.ModRotateUp, board.ModRotateDown, board.ModRotateLeft, board.ModRotateRight:
		return applyRotating(b, row, col, f)
	default:
		// Unknown/inert modifier: no-op. A modifier reaching this branch
		// for a cell the enumerator considered clickable would be an
		// invariant violation in the rule table, not a user error; the
		// engine degrades to a no-op rather than aborting (spec.md §7).
		return false
	}
}
