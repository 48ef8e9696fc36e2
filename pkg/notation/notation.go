// Package notation renders a board's wildcard display strings from a solved
// AnswerConstraintSet, per the Wildcard Notation Renderer.
package notation

import (
	"sort"
	"strings"

	"github.com/crossplay/wordquest/pkg/constraint"
)

// Display holds the per-wildcard presentation strings for one board: each
// field is either a single uppercase letter, "*", or several letters and/or
// "*" joined by " / " when the set is ambiguous.
type Display struct {
	First  string
	Second string
}

// Render produces the Display for AnswerConstraintSet o. An o containing
// Unconstrained leaves both wildcards fully free.
func Render(o constraint.Set) Display {
	if o.Contains(constraint.Unconstrained) {
		return Display{First: "*", Second: "*"}
	}

	return Display{
		First:  renderSlot(o, firstLetters, firstAmbiguous),
		Second: renderSlot(o, secondLetters, secondAmbiguous),
	}
}

func firstLetters(pc constraint.PathConstraint) (rune, bool) {
	if pc.Kind == constraint.KindFirstDecided || pc.Kind == constraint.KindBothDecided {
		return pc.First, true
	}
	return 0, false
}

func secondLetters(pc constraint.PathConstraint) (rune, bool) {
	if pc.Kind == constraint.KindSecondDecided || pc.Kind == constraint.KindBothDecided {
		return pc.Second, true
	}
	return 0, false
}

func firstAmbiguous(pc constraint.PathConstraint) bool {
	return pc.Kind == constraint.KindUnconstrained || pc.Kind == constraint.KindSecondDecided
}

func secondAmbiguous(pc constraint.PathConstraint) bool {
	return pc.Kind == constraint.KindUnconstrained || pc.Kind == constraint.KindFirstDecided
}

func renderSlot(o constraint.Set, letterOf func(constraint.PathConstraint) (rune, bool), ambiguous func(constraint.PathConstraint) bool) string {
	letters := map[rune]struct{}{}
	wild := false

	for _, pc := range o.Slice() {
		if l, ok := letterOf(pc); ok {
			letters[l] = struct{}{}
		}
		if ambiguous(pc) {
			wild = true
		}
	}

	tokens := make([]string, 0, len(letters)+1)
	for l := range letters {
		tokens = append(tokens, strings.ToUpper(string(l)))
	}
	sort.Strings(tokens)
	if wild {
		tokens = append(tokens, "*")
	}

	return strings.Join(tokens, " / ")
}
