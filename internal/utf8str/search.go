package utf8str

import (
	"bytes"
	"unicode/utf8"
)

// IndexOfRune returns the byte offset of the first occurrence of r, scanning
// left to right one code point at a time, or NotFound. The offset is a valid
// Substring argument.
func (s String) IndexOfRune(r rune) int {
	data := s.buf.Bytes()
	for offset := 0; offset < len(data); {
		dr, size := utf8.DecodeRune(data[offset:])
		if dr == r {
			return offset
		}
		offset += size
	}
	return NotFound
}

// LastIndexOfRune returns the byte offset of the last occurrence of r,
// scanning from the end, or NotFound.
func (s String) LastIndexOfRune(r rune) int {
	data := s.buf.Bytes()
	for end := len(data); end > 0; {
		dr, size := utf8.DecodeLastRune(data[:end])
		end -= size
		if dr == r {
			return end
		}
	}
	return NotFound
}

// IndexOf returns the byte offset of the first byte-exact occurrence of sub,
// or NotFound. The empty value occurs at offset 0 of any value.
func (s String) IndexOf(sub String) int {
	return bytes.Index(s.buf.Bytes(), sub.buf.Bytes())
}

// LastIndexOf is the mirror of IndexOf scanning from the end.
func (s String) LastIndexOf(sub String) int {
	return bytes.LastIndex(s.buf.Bytes(), sub.buf.Bytes())
}

// StartsWith reports whether the value begins with prefix. A prefix longer
// than the value reports false.
func (s String) StartsWith(prefix String) bool {
	return bytes.HasPrefix(s.buf.Bytes(), prefix.buf.Bytes())
}

// StartsWithRune reports whether the first code point equals r.
func (s String) StartsWithRune(r rune) bool {
	dr, size := utf8.DecodeRune(s.buf.Bytes())
	return size > 0 && dr == r
}

// EndsWith reports whether the value ends with suffix.
func (s String) EndsWith(suffix String) bool {
	return bytes.HasSuffix(s.buf.Bytes(), suffix.buf.Bytes())
}

// EndsWithRune reports whether the last code point equals r.
func (s String) EndsWithRune(r rune) bool {
	dr, size := utf8.DecodeLastRune(s.buf.Bytes())
	return size > 0 && dr == r
}
