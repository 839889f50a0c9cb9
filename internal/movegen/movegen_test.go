package movegen

import (
	"testing"

	"clickgrid/internal/board"
)

func TestEnumerateOnlyClickable(t *testing.T) {
	b := board.New(1, 3)
	b.At(0, 0).Modifier = board.ModWall
	b.At(0, 1).Modifier = board.ModBomb
	b.At(0, 2).Modifier = board.ModEmpty

	got := Enumerate(b)
	if len(got) != 1 || got[0] != (board.Position{Row: 0, Col: 1}) {
		t.Fatalf("Enumerate = %v, want just the bomb cell", got)
	}
}

func TestEnumerateRespectsReachabilityConstraint(t *testing.T) {
	b := board.New(1, 2)
	b.At(0, 0).Modifier = board.ModBomb
	b.At(0, 0).OnlyReachableFrom = board.Position{Row: 0, Col: 1}
	b.At(0, 1).Modifier = board.ModBomb
	b.At(0, 1).OnlyReachableFrom = board.Position{Row: 0, Col: 1}

	got := Enumerate(b)
	if len(got) != 1 || got[0] != (board.Position{Row: 0, Col: 1}) {
		t.Fatalf("Enumerate = %v, want only the cell matching its own reachability constraint", got)
	}
}

func TestEnumerateRowMajorOrder(t *testing.T) {
	b := board.New(2, 2)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			b.At(r, c).Modifier = board.ModFlood
		}
	}
	got := Enumerate(b)
	want := []board.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d positions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
