// Package kamatext provides an immutable UTF-8 string value type with
// code-point-aware search, slicing and iteration over a single owned byte
// buffer. Substrings are zero-copy views; values are safe to share between
// goroutines without locking.
package kamatext

import (
	"github.com/rson9/kamaText/internal/bytebuf"
	"github.com/rson9/kamaText/internal/intern"
	"github.com/rson9/kamaText/internal/utf8str"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
)

// String is the immutable UTF-8 value type.
type String = utf8str.String

// Buffer is the immutable byte buffer backing every String.
type Buffer = bytebuf.Buffer

// Iterator walks a String forward one code point at a time.
type Iterator = utf8str.Iterator

// ReverseIterator walks a String from the end toward the start.
type ReverseIterator = utf8str.ReverseIterator

// SymbolTable transcodes UTF-8 content for TryFormat targets.
type SymbolTable = utf8str.SymbolTable

// NotFound is returned by the index operations when the target is absent.
const NotFound = utf8str.NotFound

var (
	// Empty is the shared zero-length String.
	Empty = utf8str.Empty

	// InvariantUTF8 is the passthrough SymbolTable.
	InvariantUTF8 = utf8str.InvariantUTF8

	ErrNullArgument  = utf8str.ErrNullArgument
	ErrInvalidFormat = utf8str.ErrInvalidFormat
)

// FromBytes wraps a copy of b; the bytes must already be well-formed UTF-8.
func FromBytes(b []byte) String {
	return utf8str.FromBytes(b)
}

// FromText re-encodes a native string. A nil pointer fails with
// ErrNullArgument.
func FromText(text *string) (String, error) {
	return utf8str.FromText(text)
}

// FromUTF16 re-encodes a UTF-16 code unit sequence.
func FromUTF16(units []uint16) String {
	return utf8str.FromUTF16(units)
}

// NewEncodingTable adapts a golang.org/x/text encoding to a SymbolTable.
func NewEncodingTable(enc encoding.Encoding) SymbolTable {
	return utf8str.NewEncodingTable(enc)
}

// RegisterSymbolTable registers table under name ("utf-8" is pre-registered).
func RegisterSymbolTable(name string, table SymbolTable) {
	utf8str.RegisterSymbolTable(name, table)
}

// LookupSymbolTable returns the table registered under name.
func LookupSymbolTable(name string) (SymbolTable, bool) {
	return utf8str.LookupSymbolTable(name)
}

// SetLogger replaces the library logger. Must be called before concurrent
// use.
func SetLogger(l *logrus.Logger) {
	utf8str.SetLogger(l)
}

// InternStats reports intern pool hit/miss counters.
type InternStats = intern.Stats

// InternPool deduplicates equal String values so holders share one backing
// buffer.
type InternPool struct {
	pool *intern.Pool
}

// NewInternPool builds an interning pool from the default options with the
// given overrides applied.
func NewInternPool(opts ...PoolOption) *InternPool {
	options := defaultPoolOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &InternPool{
		pool: intern.NewPool(
			intern.WithMaxBytes(options.MaxBytes),
			intern.WithShardCount(options.ShardCount),
			intern.WithLogger(options.Logger),
		),
	}
}

// Intern returns the pooled value equal to s, pooling s on first sight.
func (p *InternPool) Intern(s String) String {
	return p.pool.Intern(s)
}

// Len returns the number of pooled values.
func (p *InternPool) Len() int {
	return p.pool.Len()
}

// Stats returns a snapshot of the pool counters.
func (p *InternPool) Stats() InternStats {
	return p.pool.Stats()
}

// Close releases all pooled values.
func (p *InternPool) Close() {
	p.pool.Close()
}
