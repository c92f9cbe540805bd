package isaac

import (
	"encoding/binary"
	"unsafe"

	"github.com/codahale/isaac/internal/mem"
	"golang.org/x/sys/cpu"
)

// When the requested byte order matches the host's, words are copied to the destination as raw memory.
const (
	nativeLittleEndian = !cpu.IsBigEndian
	nativeBigEndian    = cpu.IsBigEndian
)

// PutLittleEndian writes words to dst in little-endian byte order and returns the number of bytes written. Only as
// many whole words as fit in dst are written.
func PutLittleEndian[W Word](dst []byte, words []W) int {
	return put(dst, words, binary.LittleEndian, nativeLittleEndian)
}

// PutBigEndian writes words to dst in big-endian byte order and returns the number of bytes written. Only as many
// whole words as fit in dst are written.
func PutBigEndian[W Word](dst []byte, words []W) int {
	return put(dst, words, binary.BigEndian, nativeBigEndian)
}

// AppendLittleEndian appends words to dst in little-endian byte order and returns the resulting slice.
func AppendLittleEndian[W Word](dst []byte, words []W) []byte {
	head, tail := mem.SliceForAppend(dst, len(words)*wordSize[W]())
	put(tail, words, binary.LittleEndian, nativeLittleEndian)
	return head
}

// AppendBigEndian appends words to dst in big-endian byte order and returns the resulting slice.
func AppendBigEndian[W Word](dst []byte, words []W) []byte {
	head, tail := mem.SliceForAppend(dst, len(words)*wordSize[W]())
	put(tail, words, binary.BigEndian, nativeBigEndian)
	return head
}

func put[W Word](dst []byte, words []W, order binary.ByteOrder, native bool) int {
	size := wordSize[W]()
	n := min(len(words), len(dst)/size)
	if native && n > 0 {
		return copy(dst, unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), n*size))
	}
	for i, w := range words[:n] {
		putWord(dst[i*size:], w, order)
	}
	return n * size
}

func putWord[W Word](b []byte, w W, order binary.ByteOrder) {
	if wordSize[W]() == 8 {
		order.PutUint64(b, uint64(w))
	} else {
		order.PutUint32(b, uint32(w))
	}
}

// wordSize returns the size of W in bytes.
func wordSize[W Word]() int {
	return int(unsafe.Sizeof(W(0)))
}
