// Package zobrist implements the Zobrist Table: per-cell random keys used
// to hash (player, boxes) states in O(1) per incremental move.
package zobrist

import "math/rand/v2"

// Table holds one player key and one box key per cell, drawn once from a
// non-reproducible entropy source (math/rand/v2's auto-seeded top-level
// generator) and never mutated after construction.
type Table struct {
	player []uint64
	box    []uint64
}

// New builds a Table sized for n cells.
func New(n int) *Table {
	t := &Table{
		player: make([]uint64, n),
		box:    make([]uint64, n),
	}
	for i := 0; i < n; i++ {
		t.player[i] = rand.Uint64()
		t.box[i] = rand.Uint64()
	}
	return t
}

// PlayerKey returns the key for the player occupying cell idx.
func (t *Table) PlayerKey(idx int) uint64 { return t.player[idx] }

// BoxKey returns the key for a box occupying cell idx.
func (t *Table) BoxKey(idx int) uint64 { return t.box[idx] }

// Hash computes the Zobrist digest of a (player, boxes) state from scratch:
// the XOR of the player's key with the key of each occupied box cell.
func (t *Table) Hash(player int, boxes []int) uint64 {
	h := t.player[player]
	for _, b := range boxes {
		h ^= t.box[b]
	}
	return h
}
