package search

import (
	"container/heap"

	"github.com/Floranaras/Sokoban-solver/internal/bitset"
)

// state is one generated search node: the player's cell, the box cells (both
// as an ordered slice and as a bitset for O(1) occupancy tests), the move
// string that reached it, its cached heuristic, and its Zobrist hash. States
// are created on successor generation, live only on the open heap, and are
// discarded once popped (duplicate or pruned) or returned as the solution.
type state struct {
	player    int
	boxes     []int
	boxSet    *bitset.Set
	path      []byte
	heuristic int
	hash      uint64
	index     int // managed by container/heap
}

// openHeap is a min-heap over state.heuristic, tie-broken by shorter path
// length (fewer moves so far preferred), per spec.md §4.7.
type openHeap []*state

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].heuristic != h[j].heuristic {
		return h[i].heuristic < h[j].heuristic
	}
	return len(h[i].path) < len(h[j].path)
}

func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x interface{}) {
	s := x.(*state)
	s.index = len(*h)
	*h = append(*h, s)
}

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.index = -1
	*h = old[:n-1]
	return s
}

var _ heap.Interface = (*openHeap)(nil)
