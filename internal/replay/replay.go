// Package replay re-applies a previously recorded move string to a board,
// the way main.py's try_existing_solution validates a level file's
// "solution" attribute before trusting it.
package replay

import (
	"errors"
	"fmt"

	"clickgrid/internal/board"
	"clickgrid/internal/rules"
)

// ErrInvalidMove is returned when a move in the sequence is a no-op —
// spec.md §7 treats this as an invalid-replay error, not a panic.
var ErrInvalidMove = errors.New("replay: invalid move")

// Apply replays moveStr against a clone of initial and returns the
// resulting board. It fails if any move fails to change the board —
// exactly main.py's "Invalid move" check.
func Apply(initial *board.Board, moveStr string) (*board.Board, error) {
	positions, err := board.ParseMoveString(moveStr)
	if err != nil {
		return nil, err
	}

	b := initial.Clone()
	for _, p := range positions {
		if !b.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: %s out of bounds", ErrInvalidMove, p)
		}
		if !rules.ApplyClick(b, p.Row, p.Col) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMove, p)
		}
	}
	return b, nil
}

// TryExisting replays moveStr and reports the resulting board only if it
// both replays cleanly and ends up solved — an invalid or incomplete
// prior solution is discarded rather than surfaced as an error, so the
// solver can proceed with a fresh search (spec.md §7).
func TryExisting(initial *board.Board, moveStr string) (*board.Board, bool) {
	if moveStr == "" {
		return nil, false
	}
	b, err := Apply(initial, moveStr)
	if err != nil || !b.IsSolved() {
		return nil, false
	}
	return b, true
}
