package rules

import "clickgrid/internal/board"

// fireArrow implements the directional static-arrow ray: paint forward
// while cells are empty, erase backward-compatible paint while cells
// already carry the arrow's own color, stop dead on anything else.
func fireArrow(b *board.Board, row, col int, color board.Color, dr, dc int) bool {
	r, c := row+dr, col+dc
	if !b.InBounds(r, c) {
		return false
	}

	var fromMod, toMod board.Modifier
	target := b.At(r, c).Modifier
	switch {
	case target == board.Modifier(color):
		fromMod, toMod = board.Modifier(color), board.ModEmpty
	case target == board.ModEmpty:
		fromMod, toMod = board.ModEmpty, board.Modifier(color)
	default:
		return false
	}

	changed := false
	for b.InBounds(r, c) && b.At(r, c).Modifier == fromMod {
		b.At(r, c).Modifier = toMod
		r += dr
		c += dc
		changed = true
	}
	return changed
}
