package levelxml

import (
	"encoding/xml"
	"fmt"
	"strings"

	"clickgrid/internal/applog"
	"clickgrid/internal/board"
)

// Parse decodes a level-file document. A malformed document is reported
// upward as an error; the caller has nothing left to salvage (spec.md §7
// — this is the document-level failure mode, distinct from one bad
// <level> inside an otherwise-good document, which BuildBoard surfaces
// per level so the rest of the file is unaffected).
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("levelxml: parse: %w", err)
	}
	return &doc, nil
}

// stripWhitespace removes every whitespace character (space, tab, CR, LF)
// from s — the canonical "index string" spec.md §6 builds the grid from.
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// gridDims infers (rows, cols) for one grid attribute from its line
// structure: row count is the number of whitespace-separated row tokens,
// column count is the longest one.
func gridDims(s string) (rows, cols int) {
	lines := strings.Fields(s)
	rows = len(lines)
	for _, l := range lines {
		if len(l) > cols {
			cols = len(l)
		}
	}
	return
}

// BuildBoard constructs a Board from one <level>'s color/modifier grid
// attributes. Dimensions are inferred from whichever grid implies the
// larger row/column count; any (r,c) index beyond either grid's stripped
// length becomes an inert wall cell, matching spec.md §6.
func BuildBoard(lvl Level) (*board.Board, error) {
	colorFlat := stripWhitespace(lvl.Color)
	modFlat := stripWhitespace(lvl.Modifier)

	cRows, cCols := gridDims(lvl.Color)
	mRows, mCols := gridDims(lvl.Modifier)
	rows, cols := max(cRows, mRows), max(cCols, mCols)

	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("levelxml: level %d: empty grid", lvl.Number)
	}
	if rows*cols > board.MaxDim {
		return nil, fmt.Errorf("levelxml: level %d: %dx%d exceeds 15x15", lvl.Number, rows, cols)
	}

	b := board.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			cell := b.At(r, c)
			if idx >= len(colorFlat) || idx >= len(modFlat) {
				cell.Color = board.NoColor
				cell.Modifier = board.ModWall
				continue
			}
			cell.Color = board.Color(colorFlat[idx])
			cell.Modifier = board.Modifier(modFlat[idx])
			cell.OnlyReachableFrom = board.NonePos
			if cell.Modifier == board.ModBomb {
				b.HasBombs = true
			}
		}
	}
	return b, nil
}

// BuildBoards builds every level's board, logging and skipping any level
// whose grid fails to build rather than failing the whole document
// (spec.md §7's "malformed level input... level skipped").
func BuildBoards(doc *Document) map[int]*board.Board {
	out := make(map[int]*board.Board, len(doc.Levels))
	for _, lvl := range doc.Levels {
		b, err := BuildBoard(lvl)
		if err != nil {
			applog.Logger().Error().Err(err).Int("level", lvl.Number).Msg("skipping malformed level")
			continue
		}
		out[lvl.Number] = b
	}
	return out
}
