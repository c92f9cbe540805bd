// Package permute implements the ISAAC and ISAAC-64 permutations and the mixing network used by their key schedule.
//
// Both word widths share a single implementation. Everything that differs between them (the golden ratio constant,
// the shift distances of each sub-step, the topology of the mixing network, and the granularity of indirect
// addressing) is captured in a per-width table selected by the word type.
package permute

import "math/bits"

// Size is the number of words in the result and memory arrays.
const Size = 256

// Word is the set of word types the permutation is defined over.
type Word interface {
	uint32 | uint64
}

// State is the permuted state of an ISAAC generator.
type State[W Word] struct {
	Results [Size]W // The most recent batch of output words.
	Memory  [Size]W // The internal memory array.
	A, B, C W       // The accumulator, the last output word, and the round counter.
}

// Golden returns the golden ratio constant for W's width.
func Golden[W Word]() W {
	return W(variantOf[W]().golden)
}

// Mix applies the key schedule's mixing network to the eight registers once.
func Mix[W Word](r *[8]W) {
	v := variantOf[W]()
	if v.bits == 32 {
		// Shift/XOR network.
		for i := range 8 {
			r[i] ^= shift(r[(i+1)%8], v.mix[i])
			r[(i+3)%8] += r[i]
			r[(i+1)%8] += r[(i+2)%8]
		}
		return
	}

	// Add/subtract/shift/XOR network.
	for i := range 8 {
		r[i] -= r[(i+4)%8]
		r[(i+5)%8] ^= shift(r[(i+7)%8], v.mix[i])
		r[(i+7)%8] += r[i]
	}
}

// Shuffle runs one ISAAC round over s: it increments the round counter, permutes Memory, and replaces Results with a
// fresh batch of output words.
//
// Memory is walked in two half-array passes. Each element is mixed with its mirror in the opposite half, and both the
// new memory value and the output word are read from addresses derived from the state itself.
func Shuffle[W Word](s *State[W]) {
	v := variantOf[W]()

	s.C++
	a, b := s.A, s.B+s.C
	for i := range Size {
		k := i % 4
		x := s.Memory[i]
		a = (a ^ shift(a, v.steps[k]) ^ W(v.flips[k])) + s.Memory[(i+Size/2)%Size]
		y := s.Memory[index(x, v.indexShift)] + a + b
		s.Memory[i] = y
		b = s.Memory[index(y>>8, v.indexShift)] + x
		s.Results[i] = b
	}
	s.A, s.B = a, b
}

// index maps a word to a memory address. ISAAC addresses memory by byte offset, so the bits selecting a byte within a
// word are shifted away before masking.
func index[W Word](x W, n uint) int {
	return int((x >> n) & (Size - 1))
}

// shift shifts x left by n bits, or right by -n bits if n is negative.
func shift[W Word](x W, n int) W {
	if n < 0 {
		return x >> -n
	}
	return x << n
}

type variant struct {
	bits       int       // The word width.
	golden     uint64    // The golden ratio constant, truncated to the word width.
	steps      [4]int    // The shift applied to a in each of the four sub-steps.
	flips      [4]uint64 // Masks XORed into a in each sub-step.
	mix        [8]int    // The shifts of the mixing network.
	indexShift uint      // log2 of the word size in bytes.
}

func variantOf[W Word]() *variant {
	if bits.Len64(uint64(^W(0))) == 32 {
		return &isaac32
	}
	return &isaac64
}

//nolint:gochecknoglobals // these are constants
var (
	isaac32 = variant{
		bits:       32,
		golden:     0x9e3779b9,
		steps:      [4]int{13, -6, 2, -16},
		flips:      [4]uint64{0, 0, 0, 0},
		mix:        [8]int{11, -2, 8, -16, 10, -4, 8, -9},
		indexShift: 2,
	}

	isaac64 = variant{
		bits:       64,
		golden:     0x9e3779b97f4a7c13,
		steps:      [4]int{21, -5, 12, -33},
		flips:      [4]uint64{^uint64(0), 0, 0, 0},
		mix:        [8]int{-9, 9, -23, 15, -14, 20, -17, 14},
		indexShift: 3,
	}
)
