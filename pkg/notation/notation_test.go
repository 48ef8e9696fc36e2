package notation

import (
	"testing"

	"github.com/crossplay/wordquest/pkg/board"
	"github.com/crossplay/wordquest/pkg/constraint"
	"github.com/crossplay/wordquest/pkg/solver"
)

func TestRenderUnconstrainedDisplaysBothFree(t *testing.T) {
	o := constraint.NewSet(constraint.Unconstrained)
	d := Render(o)
	if d.First != "*" || d.Second != "*" {
		t.Errorf("Render() = %+v, want both *", d)
	}
}

func TestRenderSingletonDecidedLetter(t *testing.T) {
	o := constraint.NewSet(constraint.FirstDecided('e'))
	d := Render(o)
	if d.First != "E" {
		t.Errorf("First = %q, want %q", d.First, "E")
	}
	if d.Second != "*" {
		t.Errorf("Second = %q, want %q (undemanded wildcard stays free)", d.Second, "*")
	}
}

func TestRenderAmbiguousJoinsWithSlash(t *testing.T) {
	o := constraint.NewSet(constraint.FirstDecided('e'), constraint.FirstDecided('a'))
	d := Render(o)
	want := "A / E"
	if d.First != want {
		t.Errorf("First = %q, want %q", d.First, want)
	}
}

func TestRenderAppendsStarWhenSetAlsoContainsUnconstrainedOrOtherSlot(t *testing.T) {
	o := constraint.NewSet(constraint.FirstDecided('e'), constraint.SecondDecided('a'))
	d := Render(o)
	if d.First != "E / *" {
		t.Errorf("First = %q, want %q", d.First, "E / *")
	}
	if d.Second != "A / *" {
		t.Errorf("Second = %q, want %q", d.Second, "A / *")
	}
}

// TestRenderScenario6 follows the board, accepted answers, and expected
// display strings given for scenario 2's board after ["day","year","sev"].
func TestRenderScenario6(t *testing.T) {
	b, err := board.ParseRowMajor("eadux*ysta*tnhrv")
	if err != nil {
		t.Fatalf("ParseRowMajor() error = %v", err)
	}

	sol := solver.Solve(b, []string{"day", "year", "sev"})
	if !sol.Feasible {
		t.Fatal("expected scenario 2 answers to be jointly feasible")
	}

	d := Render(sol.Constraint)
	if d.Second != "E" {
		t.Errorf("Second = %q, want %q", d.Second, "E")
	}
	if d.First != "*" {
		t.Errorf("First = %q, want %q", d.First, "*")
	}
}
