package rules

import "clickgrid/internal/board"

var orthogonal = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// applyFlood implements the flood modifier: paint outward from the four
// orthogonal neighbors, replacing empty ('0') cells with the flood cell's
// color. If that pass changed nothing, fall back to erasing — flooding
// the same color back to '0'. The clicked cell itself is never repainted.
// Walls and any cell not matching the color being flooded block the fill.
func applyFlood(b *board.Board, row, col int, color board.Color) bool {
	if floodFrom(b, row, col, board.ModEmpty, board.Modifier(color)) {
		return true
	}
	return floodFrom(b, row, col, board.Modifier(color), board.ModEmpty)
}

// floodFrom runs a 4-connected flood fill seeded at the four neighbors of
// (row, col), replacing fromMod with toMod. Equivalent to attempting the
// fill independently from each neighbor: once a cell is repainted it no
// longer matches fromMod, so later seeds never re-enter it.
func floodFrom(b *board.Board, row, col int, fromMod, toMod board.Modifier) bool {
	stack := make([]board.Position, 0, 8)
	for _, d := range orthogonal {
		r, c := row+d[0], col+d[1]
		if b.InBounds(r, c) {
			stack = append(stack, board.Position{Row: r, Col: c})
		}
	}

	changed := false
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell := b.At(p.Row, p.Col)
		if cell.Modifier != fromMod {
			continue
		}
		cell.Modifier = toMod
		changed = true
		for _, d := range orthogonal {
			r, c := p.Row+d[0], p.Col+d[1]
			if b.InBounds(r, c) {
				stack = append(stack, board.Position{Row: r, Col: c})
			}
		}
	}
	return changed
}
