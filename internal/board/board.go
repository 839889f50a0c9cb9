// Package board holds the grid model: cells, move sequence, hashing, and
// the deep-copy semantics the search strategies rely on to explore the
// click-induced state graph without aliasing.
package board

import (
	"strings"

	"clickgrid/internal/hash"
)

// MaxDim is the largest rows*cols the model supports (spec.md §3).
const MaxDim = 15 * 15

// MoveSequence is the append-only log of clicked positions.
type MoveSequence struct {
	Moves []Position
}

// Add appends (row, col) to the sequence.
func (s *MoveSequence) Add(row, col int) {
	s.Moves = append(s.Moves, Position{Row: row, Col: col})
}

// N is the number of recorded moves.
func (s *MoveSequence) N() int { return len(s.Moves) }

// String renders the sequence as comma-separated "<letter><row+1>" tokens.
func (s *MoveSequence) String() string {
	parts := make([]string, len(s.Moves))
	for i, m := range s.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, ",")
}

// Clone returns a move sequence sharing no storage with s.
func (s *MoveSequence) Clone() MoveSequence {
	out := MoveSequence{Moves: make([]Position, len(s.Moves))}
	copy(out.Moves, s.Moves)
	return out
}

// Board is the rows x cols grid plus the move log accumulated to reach it.
//
// Cells are stored as a flat row-major slice rather than per-cell heap
// objects: a board copy is then a slice copy rather than a tree of pointer
// chases, which is where deep-copy cost concentrates once a search worker
// has generated a few hundred thousand states (see DESIGN.md).
type Board struct {
	Rows, Cols int
	Cells      []Cell
	Moves      MoveSequence
	HasBombs   bool
}

// New allocates an empty rows x cols board of empty paintable cells.
func New(rows, cols int) *Board {
	if rows < 1 || cols < 1 || rows*cols > MaxDim {
		panic("board: dimensions out of range")
	}
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = Cell{Color: NoColor, Modifier: ModEmpty, OnlyReachableFrom: NonePos}
	}
	return &Board{Rows: rows, Cols: cols, Cells: cells}
}

// At returns a pointer to the cell at (row, col), assumed in bounds.
func (b *Board) At(row, col int) *Cell {
	return &b.Cells[row*b.Cols+col]
}

// InBounds reports whether (row, col) lies on the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// IsSolved reports whether every cell satisfies its correctness predicate.
func (b *Board) IsSolved() bool {
	for i := range b.Cells {
		if !b.Cells[i].IsCorrect() {
			return false
		}
	}
	return true
}

// Clone produces a structurally equal board that shares no mutable state
// with b — mutating the result never affects b and vice versa.
func (b *Board) Clone() *Board {
	nb := &Board{
		Rows:     b.Rows,
		Cols:     b.Cols,
		Cells:    make([]Cell, len(b.Cells)),
		HasBombs: b.HasBombs,
	}
	copy(nb.Cells, b.Cells)
	nb.Moves = b.Moves.Clone()
	return nb
}

// canonicalBytes returns the row-major (color, modifier) byte sequence
// that identifies the board's state for hashing and equality purposes.
// The move sequence is deliberately excluded.
func (b *Board) canonicalBytes() []byte {
	buf := make([]byte, 0, len(b.Cells)*2)
	for _, c := range b.Cells {
		buf = append(buf, byte(c.Color), byte(c.Modifier))
	}
	return buf
}

// Hash returns the MurmurHash2-64 digest of the board's canonical state.
func (b *Board) Hash() uint64 {
	return hash.Murmur64(b.canonicalBytes())
}

// Equal reports whether two boards have identical row-major cell state.
// Move history is not compared.
func (b *Board) Equal(other *Board) bool {
	if b.Rows != other.Rows || b.Cols != other.Cols {
		return false
	}
	for i := range b.Cells {
		if b.Cells[i].Color != other.Cells[i].Color || b.Cells[i].Modifier != other.Cells[i].Modifier {
			return false
		}
	}
	return true
}
