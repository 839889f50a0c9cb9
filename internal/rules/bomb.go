package rules

import "clickgrid/internal/board"

// applyBomb paints the 3x3 neighborhood centered on (row, col) with color,
// skipping walls. Always reports a change.
func applyBomb(b *board.Board, row, col int, color board.Color) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if !b.InBounds(r, c) {
				continue
			}
			cell := b.At(r, c)
			if cell.Modifier == board.ModWall {
				continue
			}
			cell.Modifier = board.Modifier(color)
		}
	}
	return true
}
