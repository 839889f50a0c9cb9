package levelxml

import (
	"encoding/xml"
	"io"
)

const xmlDeclaration = "<?xml version='1.0' encoding='utf-8'?>\n"

// SetSolution updates (or clears, if moveStr is empty) the solution
// attribute of the level numbered n, in place.
func (d *Document) SetSolution(n int, moveStr string) {
	for i := range d.Levels {
		if d.Levels[i].Number == n {
			d.Levels[i].Solution = moveStr
			return
		}
	}
}

// Write serializes the document back to the level-file format, writing
// back whatever solutions the CLI collaborator (spec.md §6) has set.
func Write(w io.Writer, doc *Document) error {
	if _, err := io.WriteString(w, xmlDeclaration); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
