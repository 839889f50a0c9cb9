package heuristic

import (
	"testing"

	"clickgrid/internal/board"
)

func TestWrongCountsOnlyIncorrectCells(t *testing.T) {
	b := board.New(1, 3)
	b.At(0, 0).Color = board.NoColor
	b.At(0, 1).Color = board.Red
	b.At(0, 1).Modifier = board.ModEmpty
	b.At(0, 2).Color = board.Red
	b.At(0, 2).Modifier = board.Modifier(board.Red)

	if got := Wrong(b); got != 1 {
		t.Fatalf("Wrong() = %d, want 1", got)
	}
}

func TestEnhancedAddsBombAndDistanceWeights(t *testing.T) {
	b := board.New(1, 2)
	b.At(0, 0).Color = board.Red
	b.At(0, 0).Modifier = board.ModEmpty
	b.At(0, 1).Color = board.NoColor

	base := Enhanced(b, nil)
	if base != 1 {
		t.Fatalf("Enhanced with no hints = %d, want 1 (base cost of the one wrong cell)", base)
	}

	hints := make([]Hint, b.Rows*b.Cols)
	hints[0] = Hint{IsBomb: true, HasTarget: true, Target: board.Position{Row: 0, Col: 0}}
	if got := Enhanced(b, hints); got != 3 {
		t.Fatalf("Enhanced with a bomb hint at distance 0 = %d, want 3 (1 base + 2 bomb)", got)
	}

	hints[0] = Hint{HasTarget: true, Target: board.Position{Row: 5, Col: 5}}
	if got := Enhanced(b, hints); got != 11 {
		t.Fatalf("Enhanced with a distant target = %d, want 11 (1 base + manhattan 10)", got)
	}
}

func TestEnhancedToleratesShortHintSlice(t *testing.T) {
	b := board.New(1, 2)
	b.At(0, 0).Color = board.Red
	b.At(0, 0).Modifier = board.ModEmpty
	b.At(0, 1).Color = board.Red
	b.At(0, 1).Modifier = board.ModEmpty

	if got := Enhanced(b, []Hint{{IsBomb: true}}); got != 4 {
		t.Fatalf("Enhanced with a hint slice shorter than the board = %d, want 4 (1 base + 2 bomb for the hinted cell, 1 base for the unhinted one)", got)
	}
}
