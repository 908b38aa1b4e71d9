package utf8str

import (
	"bytes"
	"math/rand/v2"
	"unicode/utf8"

	"github.com/spaolacci/murmur3"
)

// hashSeed is drawn once per process. Hash values are stable within a run
// but deliberately not across runs.
var hashSeed = rand.Uint32()

// Equals reports byte-sequence equality: same length and identical bytes in
// order. Unicode-equivalent but differently encoded sequences are not equal.
func (s String) Equals(other String) bool {
	return s.buf.Equal(other.buf)
}

// EqualsText compares against a native text value with the same result as
// encoding text via FromText and byte-comparing, but decodes incrementally
// and stops at the first mismatch.
func (s String) EqualsText(text string) bool {
	data := s.buf.Bytes()
	for _, r := range text {
		dr, size := utf8.DecodeRune(data)
		if size == 0 || dr != r {
			return false
		}
		data = data[size:]
	}
	return len(data) == 0
}

// Compare returns -1, 0 or 1 ordering the two values byte-lexicographically.
// UTF-8 preserves scalar-value order, so for well-formed content this is
// also the lexicographic order of Unicode scalar values. Compare returns 0
// exactly when Equals reports true.
func (s String) Compare(other String) int {
	return bytes.Compare(s.buf.Bytes(), other.buf.Bytes())
}

// CompareText orders the value against a native text value by Unicode scalar
// values, consistent with Compare against FromText(text).
func (s String) CompareText(text string) int {
	data := s.buf.Bytes()
	for _, r := range text {
		dr, size := utf8.DecodeRune(data)
		if size == 0 {
			return -1 // s exhausted first
		}
		if dr != r {
			if dr < r {
				return -1
			}
			return 1
		}
		data = data[size:]
	}
	if len(data) > 0 {
		return 1
	}
	return 0
}

// Hash returns a murmur3 digest of the byte content. Values equal under
// Equals always hash equal. The seed is per-process; stability across runs
// is not guaranteed.
func (s String) Hash() uint32 {
	return murmur3.Sum32WithSeed(s.buf.Bytes(), hashSeed)
}
