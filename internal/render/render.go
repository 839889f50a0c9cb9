// Package render colorizes a board in the terminal, the way the teacher's
// graphical client draws a game board, adapted here to
// github.com/nsf/termbox-go — the terminal UI library the retrieval
// pack's "jogo" client carries. This is the peripheral renderer spec.md
// §1 excludes from the core; it exists only so the CLI has something to
// show a human.
package render

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"clickgrid/internal/board"
)

// cellWidth is how many terminal columns one board cell occupies —
// colored cells are drawn as a small block, not a single character, the
// way the original terminal renderer painted a 2-character-wide swatch.
const cellWidth = 2

var colorAttr = map[board.Color]termbox.Attribute{
	board.Red:    termbox.ColorRed,
	board.Green:  termbox.ColorGreen,
	board.Blue:   termbox.ColorBlue,
	board.Orange: termbox.ColorYellow,
	board.Purple: termbox.ColorMagenta,
}

// Init starts the termbox terminal session. Callers must defer Close.
func Init() error { return termbox.Init() }

// Close tears down the termbox terminal session.
func Close() { termbox.Close() }

// Draw paints b's cells onto the terminal at the given origin and flushes
// the screen. Wall cells render black; other cells with no playable color
// render as blank background, matching the original renderer's
// "transparent" empty cells.
func Draw(b *board.Board, originX, originY int) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := b.At(r, c)
			bg := termbox.ColorDefault
			if cell.Modifier == board.ModWall {
				bg = termbox.ColorBlack
			} else if attr, ok := colorAttr[cell.Color]; ok {
				bg = attr
			}
			x := originX + c*cellWidth
			y := originY + r
			for i := 0; i < cellWidth; i++ {
				termbox.SetCell(x+i, y, ' ', termbox.ColorDefault, bg)
			}
		}
	}
	termbox.Flush()
	return nil
}

// Glyph renders a single cell as a short plain-text label, for contexts
// (logs, non-interactive terminals) where a full termbox session isn't
// wanted — runewidth keeps multi-byte modifier glyphs aligned in a
// monospace layout the way it does for the "jogo" client's board grid.
func Glyph(cell board.Cell) string {
	s := fmt.Sprintf("%c%c", cell.Color, cell.Modifier)
	if w := runewidth.StringWidth(s); w < cellWidth {
		s += strings.Repeat(" ", cellWidth-w)
	}
	return s
}
