package isaac

import (
	"encoding/binary"
	"io"
	"math/rand/v2"

	"github.com/codahale/isaac/internal/permute"
)

// Next returns the next word of output.
//
// Next runs a permutation round after every Size words, so its cost is constant when amortized over a batch.
//
// Next returns zero if c is nil.
func (c *Context[W]) Next() W {
	if c == nil {
		return 0
	}

	w := c.s.Results[c.cursor]
	c.advance()
	return w
}

// Stream fills out with the next len(out) words of output. It produces the same words, and leaves the context in the
// same state, as len(out) calls to Next.
//
// Stream does nothing if c is nil.
func (c *Context[W]) Stream(out []W) {
	if c == nil {
		return
	}

	for len(out) > 0 {
		n := min(len(out), c.cursor+1)
		for i := range n {
			out[i] = c.s.Results[c.cursor-i]
		}
		out = out[n:]

		if c.cursor -= n; c.cursor < 0 {
			permute.Shuffle(&c.s)
			c.cursor = Size - 1
		}
	}
}

// Uint64 returns the next 64 bits of output, making a Context usable as a math/rand/v2 Source.
//
// For a Context64 it is equivalent to Next. For a Context32 it consumes two words, the first of which becomes the high
// half of the result.
//
// Uint64 is a word-granularity read. Uint64 returns zero if c is nil.
func (c *Context[W]) Uint64() uint64 {
	if c == nil {
		return 0
	}

	if wordSize[W]() == 8 {
		return uint64(c.Next())
	}

	hi := uint64(c.Next())
	lo := uint64(c.Next())
	return hi<<32 | lo
}

// NextByte returns the next byte of output. The bytes of each word are returned least significant first.
//
// NextByte must not be used on a context which is also read by word (Next, Stream, or Uint64). Interleaving the two
// returns the rest of a partially consumed word again as part of the byte stream.
//
// NextByte returns zero if c is nil.
func (c *Context[W]) NextByte() byte {
	if c == nil {
		return 0
	}

	b := byte(c.s.Results[c.cursor] >> (8 * c.offset))
	if c.offset++; c.offset == wordSize[W]() {
		c.offset = 0
		c.advance()
	}
	return b
}

// Read fills p with the next len(p) bytes of output, exactly as len(p) calls to NextByte would. It always returns
// len(p), nil.
//
// Read is a byte-granularity read and must not be mixed with word reads on the same context. If c is nil, Read
// returns 0, io.EOF.
func (c *Context[W]) Read(p []byte) (n int, err error) {
	if c == nil {
		return 0, io.EOF
	}

	n = len(p)

	// Finish any partially consumed word.
	for len(p) > 0 && c.offset != 0 {
		p[0] = c.NextByte()
		p = p[1:]
	}

	// Copy whole words.
	size := wordSize[W]()
	for len(p) >= size {
		putWord(p, c.s.Results[c.cursor], binary.LittleEndian)
		c.advance()
		p = p[size:]
	}

	// Start on the next word.
	for len(p) > 0 {
		p[0] = c.NextByte()
		p = p[1:]
	}

	return n, nil
}

// advance moves the cursor to the next unread word, running a permutation round when the batch is exhausted.
func (c *Context[W]) advance() {
	if c.cursor == 0 {
		permute.Shuffle(&c.s)
		c.cursor = Size - 1
		return
	}
	c.cursor--
}

var (
	_ io.Reader   = (*Context32)(nil)
	_ io.Reader   = (*Context64)(nil)
	_ rand.Source = (*Context32)(nil)
	_ rand.Source = (*Context64)(nil)
)
