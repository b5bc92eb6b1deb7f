package pathfind

// bitset is a fixed-size, word-packed set of dense integer ids. No example
// repo in the retrieval pack offers a bitset utility (gonum's graph/internal/set
// is map-based, fine for sparse sets but wasteful for the settled-vertex set
// here, which is dense over [0, N)); this is a small enough primitive that
// hand-rolling it over stdlib ints is the right call rather than adding a
// dependency for eight lines of bit-twiddling.
type bitset struct {
	words []uint64
}

func newBitset(n int) bitset {
	return bitset{words: make([]uint64, (n+63)/64)}
}

func (b bitset) set(i int) {
	b.words[i/64] |= 1 << uint(i%64)
}

func (b bitset) has(i int) bool {
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

func (b bitset) count() int {
	n := 0
	for _, w := range b.words {
		for w != 0 {
			w &= w - 1
			n++
		}
	}

	return n
}

func (b bitset) clone() bitset {
	words := make([]uint64, len(b.words))
	copy(words, b.words)

	return bitset{words: words}
}
