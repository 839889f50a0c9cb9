package board

import "testing"

func TestParsePosition(t *testing.T) {
	cases := []struct {
		in   string
		want Position
	}{
		{"A1", Position{Row: 0, Col: 0}},
		{"B3", Position{Row: 2, Col: 1}},
		{"a1", Position{Row: 0, Col: 0}},
	}
	for _, c := range cases {
		got, err := ParsePosition(c.in)
		if err != nil {
			t.Fatalf("ParsePosition(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParsePosition(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParsePositionInvalid(t *testing.T) {
	for _, in := range []string{"", "1", "1A", "AA", "#1"} {
		if _, err := ParsePosition(in); err == nil {
			t.Errorf("ParsePosition(%q): expected error, got none", in)
		}
	}
}

func TestParseMoveStringRoundTrip(t *testing.T) {
	positions, err := ParseMoveString("A1,B3,C2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Position{{0, 0}, {2, 1}, {1, 2}}
	if len(positions) != len(want) {
		t.Fatalf("got %d positions, want %d", len(positions), len(want))
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("position %d = %+v, want %+v", i, positions[i], want[i])
		}
	}
}

func TestParseMoveStringEmpty(t *testing.T) {
	positions, err := ParseMoveString("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(positions) != 0 {
		t.Fatalf("expected no positions, got %d", len(positions))
	}
}
