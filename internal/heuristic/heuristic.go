// Package heuristic implements the greedy box-to-goal assignment heuristic
// and the frozen-box predicate it uses as a penalty (spec.md §4.5, §4.6).
package heuristic

import "github.com/Floranaras/Sokoban-solver/internal/board"

// frozenPenalty is added per frozen off-goal box, strongly discouraging the
// search from generating stuck states without pruning them outright.
const frozenPenalty = 30

// Calculate computes the heuristic value for boxes on b, using the box
// traversal order (the order boxes appear in the slice) to break ties
// deterministically in the greedy nearest-goal assignment. Returns 0 when
// every box sits on a goal.
func Calculate(b *board.Board, boxes []int) int {
	used := make([]bool, len(b.Goals))
	total := 0
	onGoal := 0

	for _, box := range boxes {
		if b.IsGoal(box) {
			markMatched(b, used, box)
			onGoal++
			continue
		}

		if IsFrozen(b, boxes, box) {
			total += frozenPenalty
		}

		bestIdx := -1
		bestDist := 0
		br, bc := b.RowCol(box)
		for i, g := range b.Goals {
			if used[i] {
				continue
			}
			gr, gc := b.RowCol(g)
			dist := abs(br-gr) + abs(bc-gc)
			if bestIdx == -1 || dist < bestDist {
				bestIdx, bestDist = i, dist
			}
		}

		if bestIdx != -1 {
			used[bestIdx] = true
			total += bestDist
		} else {
			// No unused goal remains (|boxes| != |goals|, see spec.md §9):
			// this box can never be matched, so it must never let the
			// total collapse to 0 for a state that isn't actually solved.
			total++
		}
	}

	if onGoal == len(boxes) {
		return 0
	}
	return total
}

func markMatched(b *board.Board, used []bool, cell int) {
	for i, g := range b.Goals {
		if g == cell {
			used[i] = true
			return
		}
	}
}

// IsFrozen reports whether the box at cell is frozen per spec.md §4.6: off
// goal, with at least one obstacle on the vertical axis and at least one
// obstacle on the horizontal axis. An obstacle is out-of-bounds, a wall, or
// another box in the current state. A box on a goal is never frozen.
func IsFrozen(b *board.Board, boxes []int, cell int) bool {
	if b.IsGoal(cell) {
		return false
	}

	r, c := b.RowCol(cell)
	vertical := obstacle(b, boxes, r-1, c) || obstacle(b, boxes, r+1, c)
	horizontal := obstacle(b, boxes, r, c-1) || obstacle(b, boxes, r, c+1)
	return vertical && horizontal
}

func obstacle(b *board.Board, boxes []int, r, c int) bool {
	if !b.InBounds(r, c) {
		return true
	}
	idx := b.Index(r, c)
	if b.IsWall(idx) {
		return true
	}
	for _, box := range boxes {
		if box == idx {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
