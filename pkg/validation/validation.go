// Package validation implements the play-time Validation Pipeline: it
// processes an ordered answer list against a board and dictionary,
// accumulating wildcard constraints answer by answer without aborting the
// whole submission when a single answer is invalid.
package validation

import (
	"github.com/crossplay/wordquest/pkg/board"
	"github.com/crossplay/wordquest/pkg/constraint"
	"github.com/crossplay/wordquest/pkg/pathfinder"
)

const (
	minWordLength = 2
	maxWordLength = 16
)

// Dictionary exposes word membership; internal/dictionary implements it
// against a loaded word list.
type Dictionary interface {
	Contains(word string) bool
}

// AnswerResult is one submitted word's outcome.
type AnswerResult struct {
	Word  string
	Valid bool
	Score int
	Path  pathfinder.Path
}

// Report is the full outcome of validating an answer list: per-answer
// results plus the final cumulative AnswerConstraintSet for rendering.
type Report struct {
	Answers    []AnswerResult
	Constraint constraint.Set
}

// Validate processes answers in order against b and dict, per §4.10. Each
// answer is judged independently against the running cumulative
// AnswerConstraintSet (seeded with {Unconstrained}, meaning no wildcard
// demand yet); an invalid answer leaves that state untouched and does not
// abort processing of the remaining answers.
func Validate(b *board.Board, dict Dictionary, answers []string) Report {
	cumulative := constraint.NewSet(constraint.Unconstrained)
	used := make(map[string]bool, len(answers))
	out := make([]AnswerResult, len(answers))

	for i, word := range answers {
		out[i] = AnswerResult{Word: word}

		if len(word) < minWordLength || len(word) > maxWordLength {
			continue
		}
		if used[word] {
			continue
		}
		if !dict.Contains(word) {
			continue
		}

		results := pathfinder.Enumerate(b, word)
		if len(results) == 0 {
			continue
		}

		wordSet := pathfinder.ConstraintSet(results)
		merged := constraint.Intersect(cumulative, wordSet)
		if len(merged) == 0 {
			continue
		}

		compatible := compatibleResults(results, cumulative)

		cumulative = merged
		used[word] = true

		chosen := pathfinder.Preferred(compatible, b)
		out[i] = AnswerResult{
			Word:  word,
			Valid: true,
			Score: chosen.Path.Score(b),
			Path:  chosen.Path,
		}
	}

	return Report{Answers: out, Constraint: cumulative}
}

// compatibleResults returns the subset of results whose own PathConstraint
// merges successfully with at least one member of cumulative — the
// candidates eligible to become the word's chosen representative path.
// Always non-empty when results is non-empty and the word was accepted,
// since acceptance already proved the word's full constraint set
// intersects cumulative.
func compatibleResults(results []pathfinder.Result, cumulative constraint.Set) []pathfinder.Result {
	prior := cumulative.Slice()
	out := make([]pathfinder.Result, 0, len(results))
	for _, r := range results {
		for _, x := range prior {
			if _, ok := constraint.Merge(x, r.Constraint); ok {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
