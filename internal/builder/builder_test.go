package builder

import (
	"context"
	"testing"
	"time"

	"github.com/crossplay/wordquest/internal/dictionary"
)

func TestBuildFindsAnswerGroupWithLowThreshold(t *testing.T) {
	dict := dictionary.NewFromWords([]string{
		"silo", "seed", "sed", "sold", "does", "hiss", "lose", "dose",
		"hole", "lode", "code", "ode", "see", "sell", "sole", "hiss",
	})

	cfg := DefaultConfig()
	cfg.InitialThreshold = 1
	cfg.MinThreshold = 1
	cfg.MaxAttemptsPerThreshold = 5
	cfg.MaxTotalAttempts = 20

	result, err := Build(context.Background(), time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), dict, cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(result.Words) != AnswerGroupSize {
		t.Errorf("Words length = %d, want %d", len(result.Words), AnswerGroupSize)
	}
	if !result.Solution.Feasible {
		t.Error("returned Result's Solution should be feasible")
	}
	if result.Solution.TotalScore < cfg.MinThreshold {
		t.Errorf("TotalScore = %d, below MinThreshold %d", result.Solution.TotalScore, cfg.MinThreshold)
	}
}

func TestBuildReturnsExhaustedErrorForImpossibleThreshold(t *testing.T) {
	dict := dictionary.NewFromWords([]string{"xy"}) // a single word can never fill a 5-word group

	cfg := DefaultConfig()
	cfg.InitialThreshold = 1000000
	cfg.MinThreshold = 1000000
	cfg.MaxAttemptsPerThreshold = 2
	cfg.MaxTotalAttempts = 4

	_, err := Build(context.Background(), time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), dict, cfg)
	if err != ErrBoardGenerationExhausted {
		t.Errorf("Build() error = %v, want ErrBoardGenerationExhausted", err)
	}
}
