// Package builder implements the Quality-Controlled Puzzle Builder: it
// searches across generated boards and dictionary word combinations for a
// five-word AnswerGroup meeting a relaxing score threshold.
package builder

import (
	"context"
	"errors"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/crossplay/wordquest/internal/dictionary"
	"github.com/crossplay/wordquest/internal/generator"
	"github.com/crossplay/wordquest/pkg/board"
	"github.com/crossplay/wordquest/pkg/pathfinder"
	"github.com/crossplay/wordquest/pkg/solver"
)

// ErrBoardGenerationExhausted is returned when the (threshold, attempt)
// search reaches Config.MaxTotalAttempts without finding a satisfying
// AnswerGroup.
var ErrBoardGenerationExhausted = errors.New("builder: exhausted all attempts without meeting the quality threshold")

// AnswerGroupSize is the fixed number of words a built puzzle carries.
const AnswerGroupSize = 5

// Config parameterizes the threshold search.
type Config struct {
	InitialThreshold        int
	ThresholdStep           int
	MaxAttemptsPerThreshold int
	MinThreshold            int
	MaxTotalAttempts        int
	Alpha                   float64
	ScanConcurrency         int
	// StartAttempt offsets the first seeded board tried at InitialThreshold,
	// letting a caller skip boards already known to fail (e.g. a CLI re-run
	// that wants to resume past a previously exhausted attempt range).
	StartAttempt int
}

// DefaultConfig returns reasonable defaults for daily puzzle production.
func DefaultConfig() Config {
	return Config{
		InitialThreshold:        60,
		ThresholdStep:           5,
		MaxAttemptsPerThreshold: 20,
		MinThreshold:            20,
		MaxTotalAttempts:        500,
		Alpha:                   generator.DefaultAlpha,
		ScanConcurrency:         8,
	}
}

// Result is a built puzzle: the board, its chosen five-word AnswerGroup,
// the solved scoring/constraint data, and the threshold it was accepted at.
type Result struct {
	Board     *board.Board
	Words     []string
	Solution  solver.Solution
	Threshold int
	Attempt   int
}

// Build runs the §4.9 procedure for target date d against dict, returning
// the first board and AnswerGroup meeting a (possibly relaxed) threshold,
// or ErrBoardGenerationExhausted if the search cap is reached first.
func Build(ctx context.Context, d time.Time, dict *dictionary.Dictionary, cfg Config) (*Result, error) {
	cache := pathfinder.NewCache(4096)

	t := cfg.InitialThreshold
	attempt := cfg.StartAttempt

	for total := 0; total < cfg.MaxTotalAttempts; total++ {
		b, err := generator.Generate(d, attempt, cfg.Alpha)
		if err != nil {
			return nil, err
		}

		achievable, err := scanAchievable(ctx, b, dict, cache, cfg.ScanConcurrency)
		if err != nil {
			return nil, err
		}

		if group, sol, ok := searchAnswerGroup(b, achievable, t, cache); ok {
			return &Result{Board: b, Words: group, Solution: sol, Threshold: t, Attempt: attempt}, nil
		}

		attempt++
		if attempt == cfg.MaxAttemptsPerThreshold {
			if next := t - cfg.ThresholdStep; next > cfg.MinThreshold {
				t = next
			} else {
				t = cfg.MinThreshold
			}
			attempt = 0
		}
	}

	return nil, ErrBoardGenerationExhausted
}

// scanAchievable computes the subset of dict achievable on b, running the
// Path Enumerator for every dictionary word under a bounded worker pool so
// a single builder attempt never launches one goroutine per word.
func scanAchievable(ctx context.Context, b *board.Board, dict *dictionary.Dictionary, cache *pathfinder.Cache, concurrency int) ([]string, error) {
	words := dict.Words()
	found := make([]bool, len(words))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if len(cache.Enumerate(b, w)) > 0 {
				found[i] = true
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(words))
	for i, ok := range found {
		if ok {
			out = append(out, words[i])
		}
	}
	return out, nil
}

// searchAnswerGroup greedily accumulates achievable words by descending
// single-word best score, keeping only words whose own constraint set
// stays jointly feasible with everything already chosen, until
// AnswerGroupSize distinct words are collected. The resulting group is
// verified and scored with the Answer-Group Solver; it is returned only if
// jointly feasible and its total score meets t.
func searchAnswerGroup(b *board.Board, achievable []string, t int, cache *pathfinder.Cache) ([]string, solver.Solution, bool) {
	type scored struct {
		word  string
		score int
	}
	candidates := make([]scored, 0, len(achievable))
	for _, w := range achievable {
		best := 0
		for _, r := range cache.Enumerate(b, w) {
			if s := r.Path.Score(b); s > best {
				best = s
			}
		}
		candidates = append(candidates, scored{word: w, score: best})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].word < candidates[j].word
	})

	var chosen []string
	for _, c := range candidates {
		if len(chosen) == AnswerGroupSize {
			break
		}
		trial := append(append([]string{}, chosen...), c.word)
		sol := solver.SolveCached(b, trial, cache)
		if sol.Feasible {
			chosen = trial
		}
	}

	if len(chosen) < AnswerGroupSize {
		return nil, solver.Solution{}, false
	}

	sol := solver.SolveCached(b, chosen, cache)
	if !sol.Feasible || sol.TotalScore < t {
		return nil, solver.Solution{}, false
	}
	return chosen, sol, true
}
