package utf8str

import (
	"unicode/utf8"

	"github.com/rson9/kamaText/internal/bytebuf"
	"github.com/sirupsen/logrus"
)

// String is an immutable UTF-8 string value backed by a bytebuf.Buffer.
// Construction guarantees (or, for FromBytes, the caller guarantees) that the
// buffer holds well-formed UTF-8; every operation relies on that invariant.
//
// Values are cheap to copy and safe to share between goroutines. Slicing
// operations return views over the same storage rather than copies.
//
// The zero value is the empty string and is interchangeable with Empty.
type String struct {
	buf bytebuf.Buffer
}

// Empty is the shared zero-length value. Operations that produce an empty
// result return it instead of allocating.
var Empty = String{}

var logger = logrus.StandardLogger()

// SetLogger replaces the package logger. The default is
// logrus.StandardLogger(). Must be called before concurrent use.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

// FromBytes copies b verbatim into a new owned value. No validation is
// performed: the caller contract is that b already holds well-formed UTF-8.
func FromBytes(b []byte) String {
	if len(b) == 0 {
		return Empty
	}
	return String{buf: bytebuf.New(b)}
}

// FromText converts a native text value into a String. A nil pointer fails
// with ErrNullArgument, the empty string yields Empty without allocating.
// The text is re-encoded rune by rune, so any invalid sequence a Go string
// may carry becomes U+FFFD and the result is always well-formed UTF-8.
func FromText(text *string) (String, error) {
	if text == nil {
		return Empty, ErrNullArgument
	}
	s := *text
	if s == "" {
		return Empty, nil
	}
	if utf8.ValidString(s) {
		return String{buf: bytebuf.New([]byte(s))}, nil
	}
	encoded := make([]byte, 0, len(s))
	for _, r := range s {
		encoded = utf8.AppendRune(encoded, r)
	}
	return String{buf: bytebuf.New(encoded)}, nil
}

// FromUTF16 decodes a sequence of UTF-16 code units, surrogate pairs
// included, and re-encodes it as UTF-8. Unpaired surrogates become U+FFFD.
func FromUTF16(units []uint16) String {
	if len(units) == 0 {
		return Empty
	}
	// Worst case for BMP input is 3 bytes per code unit.
	encoded := make([]byte, 0, len(units)*3)
	for i := 0; i < len(units); i++ {
		r := rune(utf8.RuneError)
		r1 := rune(units[i])
		switch {
		case isHighSurrogate(r1):
			if i+1 < len(units) {
				if r2 := rune(units[i+1]); isLowSurrogate(r2) {
					i++
					r = 0x10000 + (r1-0xd800)<<10 + (r2 - 0xdc00)
				}
			}
		case !isLowSurrogate(r1):
			r = r1
		}
		encoded = utf8.AppendRune(encoded, r)
	}
	return String{buf: bytebuf.New(encoded)}
}

func isHighSurrogate(r rune) bool { return r >= 0xd800 && r <= 0xdbff }

func isLowSurrogate(r rune) bool { return r >= 0xdc00 && r <= 0xdfff }

// fromBuffer wraps an existing buffer without copying. Internal constructor
// used by slicing; the buffer must already hold well-formed UTF-8.
func fromBuffer(buf bytebuf.Buffer) String {
	if buf.Len() == 0 {
		return Empty
	}
	return String{buf: buf}
}

// Len returns the length in bytes.
func (s String) Len() int {
	return s.buf.Len()
}

// IsEmpty reports whether the value has byte length 0.
func (s String) IsEmpty() bool {
	return s.buf.Len() == 0
}

// Bytes returns a read-only view of the full content without copying.
// Callers must not mutate it.
func (s String) Bytes() []byte {
	return s.buf.Bytes()
}

// CopyBytes returns an independent copy of the content.
func (s String) CopyBytes() []byte {
	return s.buf.ByteSlice()
}

// String renders the value as a native string without copying.
func (s String) String() string {
	return s.buf.String()
}

// RuneCount returns the number of Unicode scalar values in the content.
func (s String) RuneCount() int {
	return utf8.RuneCount(s.buf.Bytes())
}
