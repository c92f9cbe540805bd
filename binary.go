package isaac

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/codahale/isaac/internal/mem"
	"github.com/codahale/isaac/internal/permute"
	"github.com/go-restruct/restruct"
)

// ErrInvalidState is returned when decoding a context from data which is not an encoded context.
var ErrInvalidState = errors.New("isaac: invalid state")

// layout is the encoded form of a context: every field as a little-endian word, so an encoded context is always a
// whole number of words long.
type layout[W Word] struct {
	State  permute.State[W]
	Cursor W
	Offset W
}

// AppendBinary appends the encoded state of the context to b. The encoding holds the generator's entire secret state.
//
// If c is nil, b is returned unmodified.
func (c *Context[W]) AppendBinary(b []byte) ([]byte, error) {
	if c == nil {
		return b, nil
	}

	l := &layout[W]{State: c.s, Cursor: W(c.cursor), Offset: W(c.offset)} //nolint:gosec // cursor and offset are small
	defer mem.Wipe(l)

	data, err := restruct.Pack(binary.LittleEndian, l)
	if err != nil {
		return nil, fmt.Errorf("isaac: %w", err)
	}
	b = append(b, data...)
	clear(data)
	return b, nil
}

// MarshalBinary returns the encoded state of the context. The encoding holds the generator's entire secret state.
func (c *Context[W]) MarshalBinary() (data []byte, err error) {
	return c.AppendBinary(nil)
}

// UnmarshalBinary replaces the state of the context with the encoded state in data. The restored context continues
// the stream exactly where the encoded context left off.
//
// UnmarshalBinary returns ErrInvalidState if c is nil.
func (c *Context[W]) UnmarshalBinary(data []byte) error {
	if c == nil {
		return ErrInvalidState
	}

	l := new(layout[W])
	defer mem.Wipe(l)

	size, err := restruct.SizeOf(l)
	if err != nil {
		return fmt.Errorf("isaac: %w", err)
	}

	if len(data) != size {
		return ErrInvalidState
	}

	if err := restruct.Unpack(data, binary.LittleEndian, l); err != nil {
		return fmt.Errorf("isaac: %w", err)
	}

	if l.Cursor >= Size || l.Offset >= W(wordSize[W]()) {
		return ErrInvalidState
	}

	c.s, c.cursor, c.offset = l.State, int(l.Cursor), int(l.Offset)
	return nil
}

var (
	_ encoding.BinaryAppender    = (*Context32)(nil)
	_ encoding.BinaryMarshaler   = (*Context32)(nil)
	_ encoding.BinaryUnmarshaler = (*Context32)(nil)
	_ encoding.BinaryAppender    = (*Context64)(nil)
	_ encoding.BinaryMarshaler   = (*Context64)(nil)
	_ encoding.BinaryUnmarshaler = (*Context64)(nil)
)
