// Package mem provides byte-level helpers for appending to and erasing memory.
package mem

import (
	"runtime"
	"slices"
	"unsafe"
)

// SliceForAppend takes a slice and a requested number of bytes. It returns a
// slice with the contents of the given slice followed by that many bytes and a
// second slice that aliases into it and contains only the extra bytes. If the
// original slice has sufficient capacity, then no allocation is performed.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}

// Wipe overwrites every byte of the value p points to with zero, including any
// padding between or after its fields. It does nothing if p is nil.
//
// T must not contain pointers: the bytes are cleared without write barriers, so
// the garbage collector would not observe pointer fields being zeroed.
func Wipe[T any](p *T) {
	if p == nil {
		return
	}
	clear(unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p)))
	runtime.KeepAlive(p)
}
