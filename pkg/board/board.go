package board

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath/gridgraph"
)

// Errors returned by board construction and validation.
var (
	// ErrWrongTileCount is returned when a board is not built from exactly
	// Size*Size tiles.
	ErrWrongTileCount = errors.New("board: must have exactly 16 tiles")
	// ErrWrongWildcardCount is returned when a board does not have exactly
	// two wildcard tiles.
	ErrWrongWildcardCount = errors.New("board: must have exactly 2 wildcard tiles")
	// ErrInvalidWildcardPair is returned when the two wildcards are not at
	// one of the two permitted interior diagonal positions.
	ErrInvalidWildcardPair = errors.New("board: wildcards must occupy one of the two permitted interior diagonal pairs")
	// ErrDisconnected is returned when the board's cells are not all
	// mutually reachable under king-adjacency — this should never happen
	// for a full Size x Size grid with no blocked cells, and signals a
	// construction bug rather than a data problem.
	ErrDisconnected = errors.New("board: cells are not fully connected")
)

// permittedWildcardPairs lists the two diagonal interior position pairs a
// board's wildcards may occupy.
var permittedWildcardPairs = [][2]Position{
	{{Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 1, Col: 2}, {Row: 2, Col: 1}},
}

// Board is the 4x4 tile grid for one puzzle. Exactly two tiles are
// wildcards, at one of the two permitted interior diagonal pairs. The
// wildcard whose position is lexicographically smaller is the board's
// first wildcard; the other is the second. This designation is part of
// the board's identity.
type Board struct {
	tiles  [Size][Size]Tile
	first  Position
	second Position
}

// New builds a Board from a complete Size x Size tile grid, indexed
// [row][col]. It validates all of the invariants from the data model: 16
// tiles, exactly 2 wildcards at a permitted pair, and full connectivity.
func New(tiles [Size][Size]Tile) (*Board, error) {
	var wildcards []Position
	count := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			t := tiles[r][c]
			if t.Pos != (Position{Row: r, Col: c}) {
				return nil, fmt.Errorf("board: tile at [%d][%d] carries mismatched position %v", r, c, t.Pos)
			}
			count++
			if t.Wildcard {
				wildcards = append(wildcards, t.Pos)
			}
		}
	}
	if count != Size*Size {
		return nil, ErrWrongTileCount
	}
	if len(wildcards) != 2 {
		return nil, ErrWrongWildcardCount
	}

	if err := checkPermittedPair(wildcards[0], wildcards[1]); err != nil {
		return nil, err
	}

	b := &Board{tiles: tiles}
	if wildcards[0].Less(wildcards[1]) {
		b.first, b.second = wildcards[0], wildcards[1]
	} else {
		b.first, b.second = wildcards[1], wildcards[0]
	}

	if err := b.checkConnected(); err != nil {
		return nil, err
	}

	return b, nil
}

func checkPermittedPair(a, b Position) error {
	for _, pair := range permittedWildcardPairs {
		if (a == pair[0] && b == pair[1]) || (a == pair[1] && b == pair[0]) {
			return nil
		}
	}
	return ErrInvalidWildcardPair
}

// checkConnected verifies every cell on the board is mutually reachable
// under 8-directional (king) adjacency. For a full Size x Size grid with
// no blocked cells this is always true; it is checked anyway as a
// construction-time sanity net using lvlath's general grid-connectivity
// routine rather than a hand-rolled flood fill.
func (b *Board) checkConnected() error {
	cells := make([][]int, Size)
	for r := range cells {
		cells[r] = make([]int, Size)
		for c := range cells[r] {
			cells[r][c] = 1
		}
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(cells, opts)
	if err != nil {
		return fmt.Errorf("board: connectivity check setup: %w", err)
	}
	components := gg.ConnectedComponents()
	islands, ok := components[1]
	if !ok || len(islands) != 1 || len(islands[0]) != Size*Size {
		return ErrDisconnected
	}
	return nil
}

// Tile returns the tile at pos. Callers must ensure pos is in bounds.
func (b *Board) Tile(pos Position) Tile {
	return b.tiles[pos.Row][pos.Col]
}

// FirstWildcard returns the position of the board's first wildcard (the
// one whose position sorts lexicographically smaller).
func (b *Board) FirstWildcard() Position {
	return b.first
}

// SecondWildcard returns the position of the board's second wildcard.
func (b *Board) SecondWildcard() Position {
	return b.second
}

// IsWildcard reports whether pos holds a wildcard tile.
func (b *Board) IsWildcard(pos Position) bool {
	return pos == b.first || pos == b.second
}

// WildcardSlot identifies which of a board's two wildcards a position is,
// or reports ok=false if pos is not a wildcard on this board.
func (b *Board) WildcardSlot(pos Position) (first bool, ok bool) {
	switch pos {
	case b.first:
		return true, true
	case b.second:
		return false, true
	default:
		return false, false
	}
}

// Positions returns all 16 board positions in row-major order.
func (b *Board) Positions() []Position {
	out := make([]Position, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out = append(out, Position{Row: r, Col: c})
		}
	}
	return out
}
