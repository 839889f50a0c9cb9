package render

import (
	"testing"

	"clickgrid/internal/board"
)

func TestGlyphPadsToCellWidth(t *testing.T) {
	cell := board.Cell{Color: board.Red, Modifier: board.ModEmpty}
	got := Glyph(cell)
	if len(got) < cellWidth {
		t.Fatalf("Glyph() = %q, shorter than cellWidth %d", got, cellWidth)
	}
}

func TestGlyphEncodesColorAndModifier(t *testing.T) {
	cell := board.Cell{Color: board.Blue, Modifier: board.ModBomb}
	got := Glyph(cell)
	if got[0] != byte(board.Blue) || got[1] != byte(board.ModBomb) {
		t.Fatalf("Glyph() = %q, want it to start with the color and modifier bytes", got)
	}
}
