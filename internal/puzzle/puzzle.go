// Package puzzle ties together the Board Model and its read-only static
// precomputation (Zobrist table, dead squares, rooms) into the single
// structure the search engine operates against.
package puzzle

import (
	"github.com/Floranaras/Sokoban-solver/internal/bitset"
	"github.com/Floranaras/Sokoban-solver/internal/board"
	"github.com/Floranaras/Sokoban-solver/internal/deadsquare"
	"github.com/Floranaras/Sokoban-solver/internal/rooms"
	"github.com/Floranaras/Sokoban-solver/internal/zobrist"
)

// Puzzle is the immutable, once-built context the search engine reads from:
// the Board Model plus its Zobrist table, dead-square bitset, and room
// labels/goal counts. None of these are mutated after New returns.
type Puzzle struct {
	Board   *board.Board
	Zobrist *zobrist.Table
	Dead    *bitset.Set
	Rooms   *rooms.Labels
}

// New parses text into a Board and runs all static precomputation once. It
// never errors: per board.Parse, an empty puzzle text degrades to a 1x1
// board and a text without a player starts the player at cell 0, per
// spec.md §7's "silent rather than diagnostic" policy.
func New(text string) *Puzzle {
	b := board.Parse(text)
	return &Puzzle{
		Board:   b,
		Zobrist: zobrist.New(b.Width * b.Height),
		Dead:    deadsquare.Compute(b),
		Rooms:   rooms.Compute(b),
	}
}
