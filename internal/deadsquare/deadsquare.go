// Package deadsquare implements the Dead-Square Analyzer: a reverse
// ("pull") reachability flood from every goal that classifies the cells
// from which a box can never reach a goal via legal pushes.
package deadsquare

import (
	"github.com/Floranaras/Sokoban-solver/internal/board"
	"github.com/Floranaras/Sokoban-solver/internal/bitset"
)

// directions lists the four cardinal unit steps, fixed order
// (up, down, left, right), matching spec.md §4.7's reproducibility note.
var directions = [4][2]int{
	{-1, 0}, // up
	{1, 0},  // down
	{0, -1}, // left
	{0, 1},  // right
}

// Compute returns the dead-square bitset for b: the non-wall cells that are
// not pull-reachable from any goal. Goals themselves are always live, hence
// never dead.
func Compute(b *board.Board) *bitset.Set {
	live := bitset.New(b.Width * b.Height)
	queue := make([]int, 0, len(b.Goals))
	for _, g := range b.Goals {
		if !live.Test(g) {
			live.SetBit(g)
			queue = append(queue, g)
		}
	}

	for head := 0; head < len(queue); head++ {
		target := queue[head]
		tr, tc := b.RowCol(target)

		for _, d := range directions {
			originR, originC := tr-d[0], tc-d[1]
			playerR, playerC := originR-d[0], originC-d[1]

			if !b.InBounds(originR, originC) || !b.InBounds(playerR, playerC) {
				continue
			}
			origin := b.Index(originR, originC)
			player := b.Index(playerR, playerC)

			if b.IsWall(origin) || b.IsWall(player) {
				continue
			}
			if live.Test(origin) {
				continue
			}
			live.SetBit(origin)
			queue = append(queue, origin)
		}
	}

	dead := bitset.New(b.Width * b.Height)
	for idx := range b.Cells {
		if !b.IsWall(idx) && !live.Test(idx) {
			dead.SetBit(idx)
		}
	}
	return dead
}
