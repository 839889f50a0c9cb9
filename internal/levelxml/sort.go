package levelxml

import "sort"

// SortBySolutionLength reorders doc's levels the way sort_levels.py
// reorders a tier file: levels with a recorded solution come first,
// shortest solution first; levels with no recorded solution sort last,
// in their original relative order. Every level is then renumbered
// starting at 1, overwriting its prior Number.
func SortBySolutionLength(doc *Document) {
	levels := doc.Levels
	sort.SliceStable(levels, func(i, j int) bool {
		li, lj := levels[i], levels[j]
		si, sj := solutionLen(li), solutionLen(lj)
		iSolved, jSolved := si >= 0, sj >= 0
		if iSolved != jSolved {
			return iSolved
		}
		if !iSolved {
			return false
		}
		return si < sj
	})
	for i := range levels {
		levels[i].Number = i + 1
	}
	doc.Levels = levels
}

// solutionLen returns the number of moves in lvl's recorded solution, or
// -1 if it has none.
func solutionLen(lvl Level) int {
	if lvl.Solution == "" {
		return -1
	}
	n := 1
	for _, c := range lvl.Solution {
		if c == ',' {
			n++
		}
	}
	return n
}
