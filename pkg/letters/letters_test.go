package letters

import "testing"

func TestPoints(t *testing.T) {
	tests := []struct {
		name string
		l    rune
		want int
	}{
		{"e is cheapest", 'e', 1},
		{"q is priciest", 'q', 7},
		{"s", 's', 1},
		{"uppercase normalizes", 'E', 1},
		{"a", 'a', 2},
		{"z", 'z', 5},
		{"non-letter", '*', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Points(tt.l); got != tt.want {
				t.Errorf("Points(%q) = %d, want %d", tt.l, got, tt.want)
			}
		})
	}
}

func TestPointsMatchesPublishedTable(t *testing.T) {
	want := map[rune]int{
		'a': 2, 'b': 4, 'c': 3, 'd': 3, 'e': 1, 'f': 4, 'g': 3, 'h': 3,
		'i': 2, 'j': 7, 'k': 5, 'l': 2, 'm': 3, 'n': 2, 'o': 2, 'p': 3,
		'q': 7, 'r': 2, 's': 1, 't': 2, 'u': 2, 'v': 4, 'w': 4, 'x': 6,
		'y': 3, 'z': 5,
	}

	for l, p := range want {
		if got := Points(l); got != p {
			t.Errorf("Points(%q) = %d, want %d", l, got, p)
		}
	}
}

func TestWildcardPointsIsZero(t *testing.T) {
	if WildcardPoints != 0 {
		t.Errorf("WildcardPoints = %d, want 0", WildcardPoints)
	}
}

func TestAlphabetLength(t *testing.T) {
	if got := len(Alphabet()); got != 26 {
		t.Errorf("len(Alphabet()) = %d, want 26", got)
	}
}

func TestFrequencyNormalizesCase(t *testing.T) {
	if Frequency('A') != Frequency('a') {
		t.Errorf("Frequency('A') != Frequency('a')")
	}
	if Frequency('1') != 0 {
		t.Errorf("Frequency('1') = %v, want 0", Frequency('1'))
	}
}
