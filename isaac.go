// Package isaac implements [ISAAC] and ISAAC-64, Bob Jenkins' fast cryptographic pseudorandom number generators, as
// a single implementation generic over the word width.
//
// ISAAC (Indirection, Shift, Accumulate, Add, and Count) turns a secret seed of up to 256 bytes into a stream of 32-bit
// (Context32) or 64-bit (Context64) words. ISAAC's cycles are guaranteed to be at least 2^40 values long and are 2^8295
// values long on average. The output matches the canonical public-domain implementations bit for bit on every host
// byte order.
//
// A Context is a fixed-size value. It can live on the stack, in a global, or inside another struct, and none of its
// operations allocate. Each batch of 256 words is produced by one permutation round, so one call in every 256 is
// noticeably more expensive than the others.
//
// ISAAC does not produce entropy: it expands the entropy in its seed. Seed it from a real entropy source such as
// crypto/rand.
//
// A context must be read in exactly one granularity for its whole lifetime: either words (Next, Stream, Uint64) or
// bytes (NextByte, Read). Mixing the two re-emits parts of words that have already been returned.
//
// [ISAAC]: https://www.burtleburtle.net/bob/rand/isaacafa.html
package isaac

import (
	"unsafe"

	"github.com/codahale/isaac/internal/mem"
	"github.com/codahale/isaac/internal/permute"
)

// Size is the number of words produced by each permutation round.
const Size = permute.Size

// SeedSize is the maximum number of seed bytes used by Init. Longer seeds are truncated.
const SeedSize = Size

// Word is the set of word types a Context can produce: uint32 for ISAAC and uint64 for ISAAC-64.
type Word interface {
	uint32 | uint64
}

// A Context is the state of an ISAAC generator producing words of type W.
//
// The zero value is not seeded. Call Init before reading from it.
//
// Context instances are not concurrent-safe.
type Context[W Word] struct {
	s      permute.State[W]
	cursor int // Index of the next unread word in s.Results. Words are read from Size-1 down to 0.
	offset int // Bytes of s.Results[cursor] already returned in byte mode.
}

// Context32 is the classic 32-bit ISAAC generator.
type Context32 = Context[uint32]

// Context64 is the 64-bit ISAAC-64 generator.
type Context64 = Context[uint64]

// New returns a new Context seeded with the given seed. See Init for how the seed is used.
func New[W Word](seed []byte) *Context[W] {
	var c Context[W]
	c.Init(seed)
	return &c
}

// Init seeds the context and prepares the first batch of output, discarding any previous state.
//
// Each byte of seed is used as one word of key material, so at most SeedSize bytes are used. Longer seeds are
// truncated and shorter seeds are padded with zeros. The same seed always produces the same output, regardless of the
// host's byte order.
//
// WARNING: A nil or empty seed is equivalent to a seed of SeedSize zero bytes. It produces a fixed, publicly known
// output stream and is only suitable for testing against reference vectors. Init does not substitute a random seed.
//
// Init does nothing if c is nil.
func (c *Context[W]) Init(seed []byte) {
	if c == nil {
		return
	}

	s := &c.s
	s.A, s.B, s.C = 0, 0, 0

	// Disperse the golden ratio away from any fixed point of the mixing network.
	var r [8]W
	for i := range r {
		r[i] = permute.Golden[W]()
	}
	for range 4 {
		permute.Mix(&r)
	}

	c.loadSeed(seed)

	// The first pass mixes the seed into memory block by block; the second pass makes every seed byte affect all of
	// memory.
	scramble(&r, &s.Results, &s.Memory)
	scramble(&r, &s.Memory, &s.Memory)

	permute.Shuffle(s)
	c.cursor, c.offset = Size-1, 0
}

// Erase overwrites the entire context with zeros. An erased context must be re-seeded with Init before it is used
// again.
//
// Erase does nothing if c is nil.
func (c *Context[W]) Erase() {
	mem.Wipe(c)
}

// loadSeed copies the seed into the result array one byte per word, zeroing the remainder.
func (c *Context[W]) loadSeed(seed []byte) {
	n := min(len(seed), SeedSize)
	for i, b := range seed[:n] {
		c.s.Results[i] = W(b)
	}
	clear(c.s.Results[n:])
}

// scramble adds each block of eight words of src to the registers, mixes them, and stores the registers into the
// same block of dst.
func scramble[W Word](r *[8]W, src, dst *[Size]W) {
	for i := 0; i < Size; i += 8 {
		for j := range r {
			r[j] += src[i+j]
		}
		permute.Mix(r)
		copy(dst[i:i+8], r[:])
	}
}

// Each context must be a whole number of words so that it can be erased or copied word by word.
const (
	_ = -(unsafe.Sizeof(Context[uint32]{}) % unsafe.Sizeof(uint32(0)))
	_ = -(unsafe.Sizeof(Context[uint64]{}) % unsafe.Sizeof(uint64(0)))
)
