// Package generator implements the Board Generator: a deterministic,
// seeded procedure turning a calendar date and attempt counter into a
// fully-formed board.
package generator

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/crossplay/wordquest/pkg/board"
	"github.com/crossplay/wordquest/pkg/letters"
)

// DefaultAlpha is the interpolation parameter's default value, blending
// uniform letter selection with the natural §6 frequency table evenly.
const DefaultAlpha = 0.5

// wildcardPairs mirrors board's two permitted interior diagonal pairs; kept
// local so the generator's choice of pair is expressed directly in terms
// of board.Position without reaching into board's unexported internals.
var wildcardPairs = [][2]board.Position{
	{{Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 1, Col: 2}, {Row: 2, Col: 1}},
}

// Seed derives the deterministic PRNG seed for a (date, attempt) pair:
// SHA-256 over "date|attempt", truncated to the leading 8 bytes and read
// as a big-endian uint64. Two processes given the same date and attempt
// always derive the same seed, satisfying the determinism contract.
func Seed(date time.Time, attempt int) int64 {
	key := fmt.Sprintf("%s|%d", date.Format("2006-01-02"), attempt)
	sum := sha256.Sum256([]byte(key))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}

// Generate builds the board for (date, attempt) with interpolation
// parameter alpha (use DefaultAlpha unless the caller overrides it).
// Generation deterministically picks one of the two permitted wildcard
// pairs and draws the 14 remaining letters from the distribution
// (1-alpha)*uniform + alpha*frequency, seeded from Seed(date, attempt).
func Generate(date time.Time, attempt int, alpha float64) (*board.Board, error) {
	r := rand.New(rand.NewSource(Seed(date, attempt)))

	pair := wildcardPairs[r.Intn(len(wildcardPairs))]

	var tiles [board.Size][board.Size]board.Tile
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			pos := board.Position{Row: row, Col: col}
			if pos == pair[0] || pos == pair[1] {
				tiles[row][col] = board.NewWildcardTile(pos)
				continue
			}
			tiles[row][col] = board.NewLetteredTile(pos, drawLetter(r, alpha))
		}
	}

	return board.New(tiles)
}

// drawLetter samples one letter from the interpolated distribution
// (1-alpha)*uniform(1/26) + alpha*frequency(l), using r's next float64 as
// the uniform draw over the cumulative distribution.
func drawLetter(r *rand.Rand, alpha float64) rune {
	alphabet := letters.Alphabet()
	const uniform = 1.0 / 26.0

	target := r.Float64()
	cumulative := 0.0
	for _, l := range alphabet {
		weight := (1-alpha)*uniform + alpha*letters.Frequency(l)
		cumulative += weight
		if target <= cumulative {
			return l
		}
	}
	// The frequency table sums to 0.9959 rather than 1, so for alpha > 0 the
	// accumulated mass stays below 1 and target can exceed it; the last
	// letter in the fixed a..z order takes that remainder.
	return alphabet[len(alphabet)-1]
}
