// Package levelxml reads and writes the flat level-file XML format
// (spec.md §6): a <levels> document of self-closing <level> elements
// carrying whitespace-separated color/modifier grids and an optional
// prior solution string.
package levelxml

import "encoding/xml"

// Document is the root <levels> element.
type Document struct {
	XMLName xml.Name `xml:"levels"`
	Levels  []Level  `xml:"level"`
}

// Level is one <level number="N" color="..." modifier="..." [solution="..."] />.
type Level struct {
	Number   int    `xml:"number,attr"`
	Color    string `xml:"color,attr"`
	Modifier string `xml:"modifier,attr"`
	Solution string `xml:"solution,attr,omitempty"`
}
