package pathfinder

import "github.com/crossplay/wordquest/pkg/board"

// Preferred selects the representative path for UI highlighting among
// multiple paths that spell the same word, in descending priority:
//  1. minimum count of wildcard tiles used (0 preferred)
//  2. minimum count of diagonal moves
//  3. maximum index of the last diagonal move (later diagonals preferred)
//  4. first in enumeration order
//
// This ordering governs only visual path selection; scoring and
// feasibility use the full result set from Enumerate. results must be
// non-empty.
func Preferred(results []Result, b *board.Board) Result {
	best := results[0]
	for _, r := range results[1:] {
		if isPreferredOver(r, best, b) {
			best = r
		}
	}
	return best
}

// isPreferredOver reports whether a should be chosen over the current best
// result current, under the §4.4 ordering. Ties keep the existing best, which preserves
// "first in enumeration order" as the final tie-break.
func isPreferredOver(a, current Result, board *board.Board) bool {
	aw, cw := a.Path.WildcardCount(board), current.Path.WildcardCount(board)
	if aw != cw {
		return aw < cw
	}

	ad, cd := a.Path.DiagonalCount(), current.Path.DiagonalCount()
	if ad != cd {
		return ad < cd
	}

	al, cl := a.Path.LastDiagonalIndex(), current.Path.LastDiagonalIndex()
	if al != cl {
		return al > cl
	}

	return false
}
