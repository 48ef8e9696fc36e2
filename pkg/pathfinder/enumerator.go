package pathfinder

import (
	"github.com/crossplay/wordquest/pkg/board"
	"github.com/crossplay/wordquest/pkg/constraint"
)

// Result pairs one distinct path spelling a word with the wildcard demand
// that path places on the board, derived by inspecting which wildcard(s)
// it crosses and the letter the word assigns there.
type Result struct {
	Path       Path
	Constraint constraint.PathConstraint
}

// Enumerate returns every distinct path on b that spells word, each paired
// with its derived PathConstraint. word must be lowercase a..z; any other
// rune matches no lettered tile, though a wildcard still matches it. The
// search is a
// depth-first traversal with a 16-bit bitmask tracking visited cells,
// bounded by the 16-cell board regardless of word length.
func Enumerate(b *board.Board, word string) []Result {
	letters := []rune(word)
	if len(letters) == 0 {
		return nil
	}

	var results []Result
	for _, start := range b.Positions() {
		if !tileMatches(b, start, letters[0]) {
			continue
		}
		path := make(Path, 0, len(letters))
		path = append(path, start)
		dfs(b, letters, 1, bit(start), path, &results)
	}
	return results
}

// tileMatches reports whether the tile at pos can supply character c: a
// lettered tile matches iff its letter equals c; a wildcard always matches.
func tileMatches(b *board.Board, pos board.Position, c rune) bool {
	t := b.Tile(pos)
	if t.Wildcard {
		return true
	}
	return t.Letter == c
}

func dfs(b *board.Board, letters []rune, index int, visited uint16, path Path, results *[]Result) {
	if index == len(letters) {
		complete := make(Path, len(path))
		copy(complete, path)
		*results = append(*results, Result{
			Path:       complete,
			Constraint: derivePathConstraint(b, complete, letters),
		})
		return
	}

	last := path[len(path)-1]
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			next := board.Position{Row: last.Row + dr, Col: last.Col + dc}
			if !next.InBounds() {
				continue
			}
			if visited&bit(next) != 0 {
				continue
			}
			if !tileMatches(b, next, letters[index]) {
				continue
			}
			dfs(b, letters, index+1, visited|bit(next), append(path, next), results)
		}
	}
}

// derivePathConstraint inspects which wildcard(s) path crosses and the
// letter the word assigns at that position, producing the path's single
// PathConstraint. A path visits each position at most once, so it can
// demand at most one letter per wildcard — there is no internal conflict
// to resolve here.
func derivePathConstraint(b *board.Board, path Path, letters []rune) constraint.PathConstraint {
	var firstUsed, secondUsed bool
	var firstLetter, secondLetter rune

	for i, pos := range path {
		isFirst, ok := b.WildcardSlot(pos)
		if !ok {
			continue
		}
		if isFirst {
			firstUsed = true
			firstLetter = letters[i]
		} else {
			secondUsed = true
			secondLetter = letters[i]
		}
	}

	switch {
	case firstUsed && secondUsed:
		return constraint.BothDecided(firstLetter, secondLetter)
	case firstUsed:
		return constraint.FirstDecided(firstLetter)
	case secondUsed:
		return constraint.SecondDecided(secondLetter)
	default:
		return constraint.Unconstrained
	}
}

// ConstraintSet collects the distinct PathConstraints across results into
// a constraint.Set, the AnswerConstraintSet for the word these results
// were enumerated for.
func ConstraintSet(results []Result) constraint.Set {
	s := make(constraint.Set)
	for _, r := range results {
		s[r.Constraint] = struct{}{}
	}
	return s
}
