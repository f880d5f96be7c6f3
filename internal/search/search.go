// Package search implements the Search Engine: a greedy best-first search
// over (player, boxes) states, deduplicated by Zobrist hash, pruned by the
// static dead-square and room-capacity deadlock predicates, and guided by
// the assignment heuristic.
package search

import (
	"container/heap"
	"time"

	"github.com/Floranaras/Sokoban-solver/internal/bitset"
	"github.com/Floranaras/Sokoban-solver/internal/heuristic"
	"github.com/Floranaras/Sokoban-solver/internal/puzzle"
)

// defaultOpenCapacity and defaultVisitedCapacity follow spec.md §5's
// suggested initial sizes, chosen to avoid repeated rehashing on typical
// puzzles; both are overridable by the driver for unusually large puzzles.
const (
	defaultOpenCapacity    = 10_000
	defaultVisitedCapacity = 150_000
)

// direction is one of the four cardinal steps, paired with its move
// character. Order is fixed at (up, down, left, right) per spec.md §9.
type direction struct {
	dr, dc int
	move   byte
}

var directions = [4]direction{
	{-1, 0, 'u'},
	{1, 0, 'd'},
	{0, -1, 'l'},
	{0, 1, 'r'},
}

// Options tunes the engine's initial capacities without affecting the
// moves it finds. Zero values fall back to spec.md §5's suggested sizes.
type Options struct {
	OpenCapacity    int
	VisitedCapacity int
}

// Stats reports search-engine telemetry for the driver to log.
type Stats struct {
	NodesGenerated int
	NodesExplored  int
	MaxOpenSetSize int
	Elapsed        time.Duration
}

// Solve runs the greedy best-first search described in spec.md §4.7 and
// returns the move string (empty if no solution was found) plus stats.
func Solve(p *puzzle.Puzzle, opts Options) (string, Stats) {
	start := time.Now()
	openCap := opts.OpenCapacity
	if openCap <= 0 {
		openCap = defaultOpenCapacity
	}
	visitedCap := opts.VisitedCapacity
	if visitedCap <= 0 {
		visitedCap = defaultVisitedCapacity
	}

	b := p.Board
	visited := make(map[uint64]struct{}, visitedCap)
	stats := Stats{}

	initialBoxes := append([]int(nil), b.Boxes...)
	initialBoxSet := bitset.New(b.Width * b.Height)
	for _, bx := range initialBoxes {
		initialBoxSet.SetBit(bx)
	}
	initial := &state{
		player:    b.Player,
		boxes:     initialBoxes,
		boxSet:    initialBoxSet,
		path:      nil,
		heuristic: heuristic.Calculate(b, initialBoxes),
		hash:      p.Zobrist.Hash(b.Player, initialBoxes),
	}

	open := make(openHeap, 0, openCap)
	heap.Init(&open)
	heap.Push(&open, initial)
	stats.NodesGenerated = 1
	stats.MaxOpenSetSize = 1

	for open.Len() > 0 {
		if open.Len() > stats.MaxOpenSetSize {
			stats.MaxOpenSetSize = open.Len()
		}

		current := heap.Pop(&open).(*state)

		if current.heuristic == 0 {
			stats.Elapsed = time.Since(start)
			return string(current.path), stats
		}

		if _, seen := visited[current.hash]; seen {
			continue
		}
		visited[current.hash] = struct{}{}
		stats.NodesExplored++

		expand(p, current, &open, visited, &stats)
	}

	stats.Elapsed = time.Since(start)
	return "", stats
}

func expand(p *puzzle.Puzzle, current *state, open *openHeap, visited map[uint64]struct{}, stats *Stats) {
	b := p.Board
	pr, pc := b.RowCol(current.player)

	for _, d := range directions {
		nr, nc := pr+d.dr, pc+d.dc
		if !b.InBounds(nr, nc) {
			continue
		}
		newPlayer := b.Index(nr, nc)
		if b.IsWall(newPlayer) {
			continue
		}

		occupied := current.boxSet.Test(newPlayer)
		var newBoxes []int
		newBoxSet := current.boxSet
		pushed := false
		var pushCell int

		if occupied {
			boxIdx := indexOf(current.boxes, newPlayer)
			pushR, pushC := nr+d.dr, nc+d.dc
			if !b.InBounds(pushR, pushC) {
				continue
			}
			pushCell = b.Index(pushR, pushC)
			if b.IsWall(pushCell) || current.boxSet.Test(pushCell) {
				continue
			}
			if p.Dead.Test(pushCell) {
				continue
			}

			newBoxes = append([]int(nil), current.boxes...)
			newBoxes[boxIdx] = pushCell

			if roomCapacityViolated(p, newBoxes) {
				continue
			}

			newBoxSet = current.boxSet.Clone()
			newBoxSet.Clear(newPlayer)
			newBoxSet.SetBit(pushCell)
			pushed = true
		} else {
			newBoxes = current.boxes
		}

		newHash := current.hash ^ p.Zobrist.PlayerKey(current.player) ^ p.Zobrist.PlayerKey(newPlayer)
		if pushed {
			newHash ^= p.Zobrist.BoxKey(newPlayer) ^ p.Zobrist.BoxKey(pushCell)
		}

		if _, seen := visited[newHash]; seen {
			continue
		}

		newPath := make([]byte, len(current.path)+1)
		copy(newPath, current.path)
		newPath[len(current.path)] = d.move

		succ := &state{
			player:    newPlayer,
			boxes:     newBoxes,
			boxSet:    newBoxSet,
			path:      newPath,
			heuristic: heuristic.Calculate(b, newBoxes),
			hash:      newHash,
		}
		heap.Push(open, succ)
		stats.NodesGenerated++
	}
}

// indexOf returns the position of cell within boxes, or -1 if absent.
func indexOf(boxes []int, cell int) int {
	for i, bx := range boxes {
		if bx == cell {
			return i
		}
	}
	return -1
}

// roomCapacityViolated reports whether any room now holds more boxes than
// it has goals, per the room-capacity deadlock predicate of spec.md §4.6.
func roomCapacityViolated(p *puzzle.Puzzle, boxes []int) bool {
	counts := make([]int, len(p.Rooms.GoalCount))
	for _, bx := range boxes {
		room := p.Rooms.RoomOf(bx)
		if room < 0 {
			continue
		}
		counts[room]++
		if counts[room] > p.Rooms.GoalCount[room] {
			return true
		}
	}
	return false
}
