package rules

import "clickgrid/internal/board"

var rotateFireDelta = map[board.Modifier][2]int{
	board.ModRotateUp:    {-1, 0},
	board.ModRotateDown:  {1, 0},
	board.ModRotateLeft:  {0, -1},
	board.ModRotateRight: {0, 1},
}

var rotateNext = map[board.Modifier]board.Modifier{
	board.ModRotateUp:    board.ModRotateRight,
	board.ModRotateRight: board.ModRotateDown,
	board.ModRotateDown:  board.ModRotateLeft,
	board.ModRotateLeft:  board.ModRotateUp,
}

// applyRotating fires a directional ray exactly as a static arrow would
// (w->up, s->down, a->left, x->right), then advances the clicked cell
// through the rotation cycle w -> x -> s -> a -> w. Always reports a
// change, even when the ray itself painted nothing.
func applyRotating(b *board.Board, row, col int, f board.Cell) bool {
	d := rotateFireDelta[f.Modifier]
	fireArrow(b, row, col, f.Color, d[0], d[1])
	b.At(row, col).Modifier = rotateNext[f.Modifier]
	return true
}
