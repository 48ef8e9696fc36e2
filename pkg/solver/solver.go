// Package solver implements the Answer-Group Solver: given a board and an
// ordered group of words, it computes per-word best scores, the group's
// total score, and the canonical set of globally optimal wildcard
// assignments those scores are achieved under.
package solver

import (
	"github.com/crossplay/wordquest/pkg/board"
	"github.com/crossplay/wordquest/pkg/constraint"
	"github.com/crossplay/wordquest/pkg/pathfinder"
)

// WordResult is one word's outcome within a solved AnswerGroup.
type WordResult struct {
	Word  string
	Valid bool
	Score int
	Path  pathfinder.Path
}

// Solution is the full output of solving an AnswerGroup: per-word results
// plus the group's total score and canonical AnswerConstraintSet.
type Solution struct {
	Words      []WordResult
	TotalScore int
	Constraint constraint.Set
	Feasible   bool
}

// enumerator is satisfied by both directEnumerator (a thin wrapper around
// pathfinder.Enumerate) and *pathfinder.Cache, letting one solve routine
// serve Solve and SolveCached.
type enumerator interface {
	Enumerate(b *board.Board, word string) []pathfinder.Result
}

type directEnumerator struct{}

func (directEnumerator) Enumerate(b *board.Board, word string) []pathfinder.Result {
	return pathfinder.Enumerate(b, word)
}

// Solve runs the Answer-Group Solver procedure over words on b. Words for
// which the Path Enumerator finds no path are marked invalid and excluded
// from constraint composition, per step 1; a word list with no satisfiable
// words, or whose satisfiable words merge to nothing, is reported
// infeasible via Feasible=false.
func Solve(b *board.Board, words []string) Solution {
	return solve(b, words, directEnumerator{})
}

// SolveCached behaves like Solve but routes path enumeration through cache,
// letting repeated solves against the same board reuse memoized results —
// the access pattern the Quality-Controlled Puzzle Builder relies on when
// scanning the same candidate board across many word combinations.
func SolveCached(b *board.Board, words []string, cache *pathfinder.Cache) Solution {
	return solve(b, words, cache)
}

func solve(b *board.Board, words []string, enum enumerator) Solution {
	results := make([][]pathfinder.Result, len(words))
	valid := make([]bool, len(words))
	var sets []constraint.Set

	for i, w := range words {
		r := enum.Enumerate(b, w)
		results[i] = r
		if len(r) == 0 {
			continue
		}
		valid[i] = true
		sets = append(sets, pathfinder.ConstraintSet(r))
	}

	if len(sets) == 0 {
		return infeasible(words, valid)
	}

	merged, ok := constraint.MergeAll(sets)
	if !ok {
		return infeasible(words, valid)
	}

	candidates := merged.Slice()
	best := make(map[constraint.PathConstraint]int, len(candidates))
	max := 0
	for _, p := range candidates {
		total := 0
		for i, r := range results {
			if !valid[i] {
				continue
			}
			_, score, ok := bestPathFor(r, p, b)
			if ok {
				total += score
			}
		}
		best[p] = total
		if total > max {
			max = total
		}
	}

	optimal := constraint.NewSet()
	for _, p := range candidates {
		if best[p] == max {
			optimal[p] = struct{}{}
		}
	}

	final := filterUnusedWildcards(optimal, results, valid, b)
	if len(final) == 0 {
		final = optimal // guard: never return a group with no canonical set once feasible
	}

	rep := final.Slice()[0]
	out := make([]WordResult, len(words))
	for i, w := range words {
		out[i] = WordResult{Word: w, Valid: valid[i]}
		if !valid[i] {
			continue
		}
		path, score, ok := bestPathFor(results[i], rep, b)
		if !ok {
			continue
		}
		out[i].Score = score
		out[i].Path = path
	}

	return Solution{Words: out, TotalScore: max, Constraint: final, Feasible: true}
}

func infeasible(words []string, valid []bool) Solution {
	out := make([]WordResult, len(words))
	for i, w := range words {
		out[i] = WordResult{Word: w, Valid: valid[i]}
	}
	return Solution{Words: out, Feasible: false}
}

// bestPathFor finds the maximum-scoring path among results whose
// PathConstraint merges successfully with p, tie-breaking by the §4.4
// preference rule among paths attaining that maximum.
func bestPathFor(results []pathfinder.Result, p constraint.PathConstraint, b *board.Board) (pathfinder.Path, int, bool) {
	var candidates []pathfinder.Result
	bestScore := -1
	for _, r := range results {
		if _, ok := constraint.Merge(r.Constraint, p); !ok {
			continue
		}
		score := r.Path.Score(b)
		switch {
		case score > bestScore:
			bestScore = score
			candidates = []pathfinder.Result{r}
		case score == bestScore:
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil, 0, false
	}
	return pathfinder.Preferred(candidates, b).Path, bestScore, true
}

// filterUnusedWildcards applies §4.6 step 5: discard any candidate p whose
// demanded wildcard(s) none of the words' chosen-for-p paths actually
// traverse.
func filterUnusedWildcards(optimal constraint.Set, results [][]pathfinder.Result, valid []bool, b *board.Board) constraint.Set {
	out := constraint.NewSet()
	for p := range optimal {
		usedFirst, usedSecond := false, false
		for i, r := range results {
			if !valid[i] {
				continue
			}
			path, _, ok := bestPathFor(r, p, b)
			if !ok {
				continue
			}
			for _, pos := range path {
				first, isW := b.WildcardSlot(pos)
				if !isW {
					continue
				}
				if first {
					usedFirst = true
				} else {
					usedSecond = true
				}
			}
		}

		keep := true
		switch p.Kind {
		case constraint.KindFirstDecided:
			keep = usedFirst
		case constraint.KindSecondDecided:
			keep = usedSecond
		case constraint.KindBothDecided:
			keep = usedFirst && usedSecond
		}
		if keep {
			out[p] = struct{}{}
		}
	}
	return out
}
