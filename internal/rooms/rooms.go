// Package rooms implements the Room Decomposer: labels every non-wall cell
// by its 4-connected component and records each component's goal count, for
// use by the room-capacity deadlock predicate.
package rooms

import "github.com/Floranaras/Sokoban-solver/internal/board"

const noRoom = -1

// Labels holds a per-cell room id (noRoom for walls) and the goal count of
// each room, indexed by room id.
type Labels struct {
	RoomID    []int
	GoalCount []int
}

// Compute labels every non-wall cell of b by connected component, scanning
// cells in row-major order and flooding each unlabeled component with the
// next available room id.
func Compute(b *board.Board) *Labels {
	n := b.Width * b.Height
	labels := &Labels{
		RoomID:    make([]int, n),
		GoalCount: make([]int, 0),
	}
	for i := range labels.RoomID {
		labels.RoomID[i] = noRoom
	}

	nextRoom := 0
	queue := make([]int, 0, n)
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			start := b.Index(row, col)
			if b.IsWall(start) || labels.RoomID[start] != noRoom {
				continue
			}

			goalCount := 0
			queue = queue[:0]
			queue = append(queue, start)
			labels.RoomID[start] = nextRoom

			for head := 0; head < len(queue); head++ {
				cur := queue[head]
				if b.IsGoal(cur) {
					goalCount++
				}
				cr, cc := b.RowCol(cur)
				for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					nr, nc := cr+d[0], cc+d[1]
					if !b.InBounds(nr, nc) {
						continue
					}
					ni := b.Index(nr, nc)
					if b.IsWall(ni) || labels.RoomID[ni] != noRoom {
						continue
					}
					labels.RoomID[ni] = nextRoom
					queue = append(queue, ni)
				}
			}

			labels.GoalCount = append(labels.GoalCount, goalCount)
			nextRoom++
		}
	}

	return labels
}

// RoomOf returns the room id of a non-wall cell, or noRoom for a wall.
func (l *Labels) RoomOf(idx int) int { return l.RoomID[idx] }
