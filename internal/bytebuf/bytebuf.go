package bytebuf

import (
	"fmt"
	"slices"
	"unsafe"
)

// Buffer is an immutable, fixed-length byte sequence. Once constructed its
// contents never change, so views handed out by Bytes, String and Slice are
// safe to share between goroutines without synchronization.
//
// The zero value is the empty buffer.
type Buffer struct {
	data []byte
}

// New copies data into a freshly owned Buffer. The caller keeps ownership of
// its slice and may mutate it afterwards without affecting the buffer.
func New(data []byte) Buffer {
	if len(data) == 0 {
		return Buffer{}
	}
	return Buffer{data: slices.Clone(data)}
}

// Empty returns the zero-length buffer.
func Empty() Buffer {
	return Buffer{}
}

// Len returns the number of bytes in the buffer.
func (b Buffer) Len() int {
	return len(b.data)
}

// ByteSlice returns a copy of the contents, safe for the caller to mutate.
func (b Buffer) ByteSlice() []byte {
	return slices.Clone(b.data)
}

// Bytes returns the underlying storage without copying. Callers must treat
// the returned slice as read-only.
func (b Buffer) Bytes() []byte {
	return b.data
}

// String returns the contents as a string without copying.
func (b Buffer) String() string {
	if len(b.data) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b.data), len(b.data))
}

// Equal reports whether two buffers hold identical bytes.
func (b Buffer) Equal(other Buffer) bool {
	if len(b.data) != len(other.data) {
		return false
	}
	return string(b.data) == string(other.data) // compiles to a memory compare
}

// Clone returns a deep copy with independent storage.
func (b Buffer) Clone() Buffer {
	return New(b.data)
}

// Slice returns a view of the byte range [offset, offset+length) sharing the
// receiver's storage. No bytes are copied; immutability makes the aliasing
// safe. Slice panics when the range is out of bounds.
func (b Buffer) Slice(offset, length int) Buffer {
	if offset < 0 || length < 0 || offset+length > len(b.data) {
		panic(fmt.Sprintf("bytebuf: slice [%d:%d] out of range for length %d",
			offset, offset+length, len(b.data)))
	}
	if length == 0 {
		return Buffer{}
	}
	return Buffer{data: b.data[offset : offset+length : offset+length]}
}
