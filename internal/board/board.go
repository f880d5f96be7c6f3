// Package board implements the Board Model: parsing the ASCII puzzle text
// into a geometric grid of cells, goals, and starting player/box positions.
package board

import (
	"strings"

	"github.com/Floranaras/Sokoban-solver/internal/bitset"
)

// Cell is the static terrain of one grid square. Immutable after parse.
type Cell uint8

const (
	Wall Cell = iota
	Floor
	Goal
)

// Board is the static geometry of a puzzle plus its starting player and box
// positions. Coordinates are flattened cell indices: row*Width+col.
type Board struct {
	Width, Height int
	Cells         []Cell
	GoalSet       *bitset.Set // authoritative goal membership, one bit per cell
	Goals         []int       // ordered list of goal cell indices, scan order
	Player        int         // starting player cell index
	Boxes         []int       // starting box cell indices, scan order
	Degenerate    bool        // true when the input text had no usable rows
}

// Index flattens a (row, col) pair into a cell index.
func (b *Board) Index(row, col int) int { return row*b.Width + col }

// RowCol recovers the (row, col) pair for a cell index.
func (b *Board) RowCol(idx int) (row, col int) { return idx / b.Width, idx % b.Width }

// InBounds reports whether (row, col) lies within the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// Parse decodes a multiline ASCII puzzle string per spec.md §4.1. Width is
// the longest line; shorter lines are right-padded with Floor. If no player
// character is found, Player defaults to cell index 0 (row 0, col 0),
// matching the "empty or malformed puzzle" policy of spec.md §7: the search
// must still run rather than error out.
func Parse(text string) *Board {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	// Drop a single trailing empty line produced by a final newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	height := len(lines)
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	degenerate := false
	if width == 0 || height == 0 {
		// Zero lines or every line empty: fall back to a single floor cell
		// so the search still has a player cell to start from, per the
		// "empty or malformed puzzle" policy — silent, not an error.
		width, height, degenerate = 1, 1, true
	}

	b := &Board{
		Width:      width,
		Height:     height,
		Cells:      make([]Cell, width*height),
		GoalSet:    bitset.New(width * height),
		Goals:      make([]int, 0),
		Boxes:      make([]int, 0),
		Player:     -1,
		Degenerate: degenerate,
	}

	if degenerate {
		b.Cells[0] = Floor
		b.Player = 0
		return b
	}

	for row, line := range lines {
		col := 0
		for _, ch := range line {
			idx := b.Index(row, col)
			decodeCell(b, idx, ch)
			col++
		}
		for ; col < width; col++ {
			idx := b.Index(row, col)
			b.Cells[idx] = Floor
		}
	}

	if b.Player == -1 {
		b.Player = 0
	}

	// Goals is derived from GoalSet after decoding so the two never
	// disagree; Each walks bits in ascending index order, which is the
	// same row-major scan order the characters were decoded in.
	b.GoalSet.Each(func(idx int) { b.Goals = append(b.Goals, idx) })

	return b
}

func decodeCell(b *Board, idx int, ch rune) {
	switch ch {
	case '#':
		b.Cells[idx] = Wall
	case '.':
		b.Cells[idx] = Goal
		b.GoalSet.SetBit(idx)
	case '@':
		b.Cells[idx] = Floor
		b.Player = idx
	case '+':
		b.Cells[idx] = Goal
		b.GoalSet.SetBit(idx)
		b.Player = idx
	case '$':
		b.Cells[idx] = Floor
		b.Boxes = append(b.Boxes, idx)
	case '*':
		b.Cells[idx] = Goal
		b.GoalSet.SetBit(idx)
		b.Boxes = append(b.Boxes, idx)
	default:
		b.Cells[idx] = Floor
	}
}

// IsWall reports whether a cell index denotes a wall.
func (b *Board) IsWall(idx int) bool { return b.Cells[idx] == Wall }

// IsGoal reports whether a cell index denotes a goal.
func (b *Board) IsGoal(idx int) bool { return b.GoalSet.Test(idx) }
