package utf8str

import "unicode/utf8"

// Iterator walks a value forward one Unicode scalar value at a time. It is
// single pass: create a fresh one via Iterate to re-traverse.
//
// Usage:
//
//	for it := s.Iterate(); it.Next(); {
//		_ = it.Rune()   // current scalar value
//		_ = it.Offset() // byte offset where it starts
//	}
type Iterator struct {
	data   []byte
	next   int // byte offset of the next undecoded scalar
	offset int // starting byte offset of the current scalar
	r      rune
}

// Iterate returns a fresh forward iterator positioned before the first code
// point.
func (s String) Iterate() *Iterator {
	return &Iterator{data: s.buf.Bytes()}
}

// Next advances to the next code point. It returns false when the value is
// exhausted, or when a malformed sequence is hit — buffers are assumed
// well-formed, so that case is logged and iteration simply stops.
func (it *Iterator) Next() bool {
	if it.next >= len(it.data) {
		return false
	}
	r, size := utf8.DecodeRune(it.data[it.next:])
	if r == utf8.RuneError && size <= 1 {
		logger.Warnf("utf8str: malformed sequence at byte offset %d, stopping iteration", it.next)
		it.next = len(it.data)
		return false
	}
	it.offset = it.next
	it.r = r
	it.next += size
	return true
}

// Rune returns the current scalar value. Valid only after Next returned true.
func (it *Iterator) Rune() rune {
	return it.r
}

// Offset returns the byte offset at which the current scalar value starts.
// Valid only after Next returned true; the offset is a valid Substring
// argument.
func (it *Iterator) Offset() int {
	return it.offset
}

// ReverseIterator is the mirror of Iterator, decoding code points from the
// end of the value toward the start.
type ReverseIterator struct {
	data   []byte
	end    int // bytes of the value not yet consumed
	offset int
	r      rune
}

// IterateBackward returns a fresh reverse iterator positioned after the last
// code point.
func (s String) IterateBackward() *ReverseIterator {
	data := s.buf.Bytes()
	return &ReverseIterator{data: data, end: len(data)}
}

// Next steps backward to the previous code point, returning false once the
// start of the value is reached. Malformed sequences stop iteration, same as
// the forward iterator.
func (it *ReverseIterator) Next() bool {
	if it.end <= 0 {
		return false
	}
	r, size := utf8.DecodeLastRune(it.data[:it.end])
	if r == utf8.RuneError && size <= 1 {
		logger.Warnf("utf8str: malformed sequence before byte offset %d, stopping iteration", it.end)
		it.end = 0
		return false
	}
	it.end -= size
	it.offset = it.end
	it.r = r
	return true
}

// Rune returns the current scalar value. Valid only after Next returned true.
func (it *ReverseIterator) Rune() rune {
	return it.r
}

// Offset returns the starting byte offset of the current scalar value.
func (it *ReverseIterator) Offset() int {
	return it.offset
}
