// Package bitset implements a small multi-word bit set, generalizing the
// single 64-bit bitboard idiom to an arbitrary number of bits so it can be
// sized to a puzzle's cell count rather than a fixed 8x8 board.
package bitset

// wordBits is the number of bits held per backing word.
const wordBits = 64

// bitScanLookup maps a De Bruijn hash of an isolated low bit to its index.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// bitScan returns the index of the least significant set bit of a single word.
func bitScan(word uint64) int {
	return bitScanLookup[(word&-word)*bitscanMagic>>58]
}

// Set is a fixed-size bit vector backed by []uint64 words.
type Set struct {
	bits []uint64
	n    int
}

// New allocates a Set able to hold n bits, all initially clear.
func New(n int) *Set {
	words := (n + wordBits - 1) / wordBits
	if words == 0 {
		words = 1
	}
	return &Set{bits: make([]uint64, words), n: n}
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	bits := make([]uint64, len(s.bits))
	copy(bits, s.bits)
	return &Set{bits: bits, n: s.n}
}

// SetBit sets bit i.
func (s *Set) SetBit(i int) {
	s.bits[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear clears bit i.
func (s *Set) Clear(i int) {
	s.bits[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Test reports whether bit i is set.
func (s *Set) Test(i int) bool {
	return s.bits[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// PopCount returns the total number of set bits.
func (s *Set) PopCount() int {
	total := 0
	for _, word := range s.bits {
		for word != 0 {
			total++
			word &= word - 1
		}
	}
	return total
}

// Each calls fn once per set bit, in ascending index order.
func (s *Set) Each(fn func(i int)) {
	for w, word := range s.bits {
		base := w * wordBits
		for word != 0 {
			lsb := bitScan(word)
			fn(base + lsb)
			word &= word - 1
		}
	}
}
