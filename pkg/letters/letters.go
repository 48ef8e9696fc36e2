// Package letters holds the fixed letter-frequency table and the published
// point values for a..z.
package letters

// frequency is the fixed a..z frequency table backing the interpolated
// letter-draw distribution (board generator). Values must be reproduced
// exactly so that two processes compute identical distributions.
var frequency = map[rune]float64{
	'a': .078, 'b': .02, 'c': .04, 'd': .038, 'e': .11, 'f': .014,
	'g': .03, 'h': .023, 'i': .086, 'j': .0021, 'k': .0097, 'l': .053,
	'm': .027, 'n': .072, 'o': .061, 'p': .028, 'q': .0019, 'r': .073,
	's': .087, 't': .067, 'u': .033, 'v': .01, 'w': .0091, 'x': .0027,
	'y': .016, 'z': .0044,
}

// points is the published a..z point table. Nominally floor(log2(freq('e')
// / freq(l))) + 1 over the frequency table above, but the formula doesn't
// reproduce these exact values for every letter, so the table is taken
// verbatim rather than derived at runtime.
var points = map[rune]int{
	'a': 2, 'b': 4, 'c': 3, 'd': 3, 'e': 1, 'f': 4,
	'g': 3, 'h': 3, 'i': 2, 'j': 7, 'k': 5, 'l': 2,
	'm': 3, 'n': 2, 'o': 2, 'p': 3, 'q': 7, 'r': 2,
	's': 1, 't': 2, 'u': 2, 'v': 4, 'w': 4, 'x': 6,
	'y': 3, 'z': 5,
}

// Points returns the point value of a lowercase letter a..z. Input is
// normalized to lowercase; any rune outside a..z returns 0.
func Points(l rune) int {
	if l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	p, ok := points[l]
	if !ok {
		return 0
	}
	return p
}

// WildcardPoints is the point value contributed by a wildcard tile,
// regardless of the letter it is ultimately assigned: always zero.
const WildcardPoints = 0

// Frequency returns the fixed frequency of a lowercase letter a..z, or 0
// if the rune is not a recognized letter. Exposed for the board generator's
// interpolated letter-draw distribution.
func Frequency(l rune) float64 {
	if l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return frequency[l]
}

// Alphabet returns the 26 lowercase letters in order, for callers that need
// to iterate the full distribution (e.g. the board generator).
func Alphabet() []rune {
	out := make([]rune, 0, 26)
	for l := 'a'; l <= 'z'; l++ {
		out = append(out, l)
	}
	return out
}
