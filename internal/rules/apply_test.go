package rules

import (
	"testing"

	"clickgrid/internal/board"
)

func TestApplyClickAlwaysLogsTheMove(t *testing.T) {
	b := board.New(1, 1)
	b.At(0, 0).Modifier = board.ModEmpty
	ApplyClick(b, 0, 0)
	if b.Moves.N() != 1 {
		t.Fatalf("move log should grow even on a no-op click, got %d moves", b.Moves.N())
	}
}

func TestFireArrowPaintsForwardUntilBlocked(t *testing.T) {
	b := board.New(1, 4)
	b.At(0, 0).Modifier = board.ModArrowRight
	b.At(0, 0).Color = board.Red
	b.At(0, 1).Modifier = board.ModEmpty
	b.At(0, 2).Modifier = board.ModEmpty
	b.At(0, 3).Modifier = board.ModWall

	changed := ApplyClick(b, 0, 0)
	if !changed {
		t.Fatal("expected the arrow fill to report a change")
	}
	if b.At(0, 1).Modifier != board.Modifier(board.Red) || b.At(0, 2).Modifier != board.Modifier(board.Red) {
		t.Fatalf("expected cells 1 and 2 painted red, got %c %c", b.At(0, 1).Modifier, b.At(0, 2).Modifier)
	}
	if b.At(0, 3).Modifier != board.ModWall {
		t.Fatal("wall cell must never be repainted")
	}
}

func TestFireArrowErasesOwnColor(t *testing.T) {
	b := board.New(1, 2)
	b.At(0, 0).Modifier = board.ModArrowRight
	b.At(0, 0).Color = board.Red
	b.At(0, 1).Modifier = board.Modifier(board.Red)

	if !ApplyClick(b, 0, 0) {
		t.Fatal("expected erase to report a change")
	}
	if b.At(0, 1).Modifier != board.ModEmpty {
		t.Fatalf("expected cell erased back to empty, got %c", b.At(0, 1).Modifier)
	}
}

func TestFireArrowOffEdgeIsNoop(t *testing.T) {
	b := board.New(1, 1)
	b.At(0, 0).Modifier = board.ModArrowRight
	b.At(0, 0).Color = board.Red
	if ApplyClick(b, 0, 0) {
		t.Fatal("an arrow firing off the grid edge should not change anything")
	}
}

func TestApplyFloodFillsThenErases(t *testing.T) {
	b := board.New(3, 3)
	b.At(1, 1).Modifier = board.ModFlood
	b.At(1, 1).Color = board.Blue
	for _, p := range [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		b.At(p[0], p[1]).Modifier = board.ModEmpty
	}

	if !ApplyClick(b, 1, 1) {
		t.Fatal("expected the flood fill pass to report a change")
	}
	for _, p := range [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		if got := b.At(p[0], p[1]).Modifier; got != board.Modifier(board.Blue) {
			t.Fatalf("cell %v: got modifier %c, want blue color letter", p, got)
		}
	}

	// Clicking the flood cell again should now erase what it just painted.
	if !ApplyClick(b, 1, 1) {
		t.Fatal("expected the erase fallback to report a change")
	}
	for _, p := range [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		if got := b.At(p[0], p[1]).Modifier; got != board.ModEmpty {
			t.Fatalf("cell %v: got modifier %c, want empty after erase pass", p, got)
		}
	}
}

func TestApplyFloodNeverCrossesWalls(t *testing.T) {
	b := board.New(1, 3)
	b.At(0, 0).Modifier = board.ModFlood
	b.At(0, 0).Color = board.Green
	b.At(0, 1).Modifier = board.ModWall
	b.At(0, 2).Modifier = board.ModEmpty

	ApplyClick(b, 0, 0)
	if b.At(0, 1).Modifier != board.ModWall {
		t.Fatal("wall must block the flood fill and stay a wall")
	}
	if b.At(0, 2).Modifier != board.ModEmpty {
		t.Fatal("flood fill must not reach past a wall it can't cross")
	}
}

func TestApplyBombPaintsNeighborhoodSkippingWalls(t *testing.T) {
	b := board.New(3, 3)
	b.At(1, 1).Modifier = board.ModBomb
	b.At(1, 1).Color = board.Orange
	b.At(0, 0).Modifier = board.ModWall

	if !ApplyClick(b, 1, 1) {
		t.Fatal("bomb should always report a change")
	}
	if b.At(0, 0).Modifier != board.ModWall {
		t.Fatal("bomb must skip walls in its neighborhood")
	}
	if b.At(0, 1).Modifier != board.Modifier(board.Orange) {
		t.Fatalf("expected neighbor painted orange, got %c", b.At(0, 1).Modifier)
	}
	if b.At(2, 2).Modifier != board.Modifier(board.Orange) {
		t.Fatalf("expected far corner of the 3x3 painted orange, got %c", b.At(2, 2).Modifier)
	}
}

func TestApplyRotatingAdvancesCycle(t *testing.T) {
	b := board.New(1, 2)
	b.At(0, 0).Modifier = board.ModRotateUp
	b.At(0, 0).Color = board.Red
	b.At(0, 1).Modifier = board.ModEmpty

	ApplyClick(b, 0, 0)
	if b.At(0, 0).Modifier != board.ModRotateRight {
		t.Fatalf("expected w -> x after firing, got %c", b.At(0, 0).Modifier)
	}

	b.At(0, 0).Modifier = board.ModRotateLeft
	ApplyClick(b, 0, 0)
	if b.At(0, 0).Modifier != board.ModRotateUp {
		t.Fatalf("expected a -> w after firing, got %c", b.At(0, 0).Modifier)
	}
}
