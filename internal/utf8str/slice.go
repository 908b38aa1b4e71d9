package utf8str

import (
	"fmt"
	"unicode/utf8"
)

// IsBoundary reports whether byte offset i falls on a code-point boundary of
// the value. Offsets 0 and Len() are always boundaries.
func (s String) IsBoundary(i int) bool {
	if i < 0 || i > s.buf.Len() {
		return false
	}
	if i == 0 || i == s.buf.Len() {
		return true
	}
	return utf8.RuneStart(s.buf.Bytes()[i])
}

// checkBoundary panics unless i is a valid code-point boundary. Offsets that
// land mid-sequence would yield a value violating the well-formed-UTF-8
// invariant, so they are rejected the same way Go rejects bad slice indexes.
func (s String) checkBoundary(i int) {
	if i < 0 || i > s.buf.Len() {
		panic(fmt.Sprintf("utf8str: offset %d out of range for length %d", i, s.buf.Len()))
	}
	if !s.IsBoundary(i) {
		panic(fmt.Sprintf("utf8str: offset %d is not a code-point boundary", i))
	}
}

// Substring returns the suffix starting at byte offset index. When index is
// 0 the receiver itself is returned without copying. The offset must be a
// code-point boundary; violations panic.
func (s String) Substring(index int) String {
	if index == 0 {
		return s
	}
	s.checkBoundary(index)
	return fromBuffer(s.buf.Slice(index, s.buf.Len()-index))
}

// SubstringRange returns the byte range [index, index+length). A zero length
// yields Empty without allocating; the full range returns the receiver
// itself. Any other range is a zero-copy view aliasing the receiver's
// storage, which is safe because values are immutable. Both ends must be
// code-point boundaries; violations panic.
func (s String) SubstringRange(index, length int) String {
	if length == 0 {
		return Empty
	}
	if index == 0 && length == s.buf.Len() {
		return s
	}
	if length < 0 {
		panic(fmt.Sprintf("utf8str: negative substring length %d", length))
	}
	s.checkBoundary(index)
	s.checkBoundary(index + length)
	return fromBuffer(s.buf.Slice(index, length))
}

// SubstringFrom returns the suffix starting at the first occurrence of delim
// (inclusive). When delim does not occur it reports false and returns Empty;
// callers must check the flag before using the result.
func (s String) SubstringFrom(delim String) (String, bool) {
	i := s.IndexOf(delim)
	if i == NotFound {
		return Empty, false
	}
	return s.Substring(i), true
}

// SubstringFromRune is SubstringFrom for a single code point delimiter.
func (s String) SubstringFromRune(r rune) (String, bool) {
	i := s.IndexOfRune(r)
	if i == NotFound {
		return Empty, false
	}
	return s.Substring(i), true
}

// SubstringTo returns the prefix up to the first occurrence of delim
// (exclusive). When delim does not occur it reports false and returns Empty.
func (s String) SubstringTo(delim String) (String, bool) {
	i := s.IndexOf(delim)
	if i == NotFound {
		return Empty, false
	}
	return s.SubstringRange(0, i), true
}

// SubstringToRune is SubstringTo for a single code point delimiter.
func (s String) SubstringToRune(r rune) (String, bool) {
	i := s.IndexOfRune(r)
	if i == NotFound {
		return Empty, false
	}
	return s.SubstringRange(0, i), true
}

// TrimStartFunc returns the suffix remaining after dropping leading code
// points for which pred reports true. The result aliases the receiver's
// storage.
func (s String) TrimStartFunc(pred func(rune) bool) String {
	data := s.buf.Bytes()
	offset := 0
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if !pred(r) {
			break
		}
		offset += size
	}
	return s.Substring(offset)
}

// TrimEndFunc returns the prefix remaining after dropping trailing code
// points for which pred reports true.
func (s String) TrimEndFunc(pred func(rune) bool) String {
	data := s.buf.Bytes()
	end := len(data)
	for end > 0 {
		r, size := utf8.DecodeLastRune(data[:end])
		if !pred(r) {
			break
		}
		end -= size
	}
	return s.SubstringRange(0, end)
}

// TrimFunc drops code points matching pred from both ends.
func (s String) TrimFunc(pred func(rune) bool) String {
	return s.TrimStartFunc(pred).TrimEndFunc(pred)
}

// Trim drops any of the given code points from both ends.
func (s String) Trim(cutset ...rune) String {
	return s.TrimFunc(func(r rune) bool {
		for _, c := range cutset {
			if r == c {
				return true
			}
		}
		return false
	})
}
