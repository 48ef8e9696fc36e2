// Package board implements the 4x4 tile grid: tiles, the wildcard-pair
// designation that is part of a board's identity, and board construction
// and validation.
package board

import "github.com/crossplay/wordquest/pkg/letters"

// Size is the fixed board dimension: boards are always Size x Size.
const Size = 4

// Position is a zero-indexed (row, col) coordinate on the board.
type Position struct {
	Row, Col int
}

// Less reports whether p is lexicographically smaller than o, comparing
// Row first and then Col. Used to derive the first/second wildcard
// designation.
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// InBounds reports whether p lies within the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Tile is a single board cell: either a lettered tile carrying a
// precomputed point value, or a wildcard carrying zero points.
type Tile struct {
	Pos      Position
	Wildcard bool
	Letter   rune // 0 for wildcard tiles
	Points   int  // 0 for wildcard tiles
}

// NewLetteredTile builds a lettered tile at pos for the given lowercase
// letter, with its point value looked up from the fixed letter table.
func NewLetteredTile(pos Position, letter rune) Tile {
	return Tile{Pos: pos, Letter: letter, Points: letters.Points(letter)}
}

// NewWildcardTile builds a wildcard tile at pos.
func NewWildcardTile(pos Position) Tile {
	return Tile{Pos: pos, Wildcard: true}
}
