package utf8str

import (
	"github.com/rson9/kamaText/utils"
	"golang.org/x/text/encoding"
)

// SymbolTable encodes UTF-8 content into a target byte encoding. It is the
// external collaborator TryFormat delegates to for non-UTF-8 targets.
type SymbolTable interface {
	// Invariant reports whether the table is the UTF-8 passthrough, in
	// which case TryFormat copies bytes directly.
	Invariant() bool

	// Encode transcodes src (well-formed UTF-8) into dst and returns the
	// number of bytes written. It reports false when dst is too small or
	// the content is not representable in the target encoding.
	Encode(dst, src []byte) (int, bool)
}

type invariantUTF8 struct{}

func (invariantUTF8) Invariant() bool { return true }

func (invariantUTF8) Encode(dst, src []byte) (int, bool) {
	if len(dst) < len(src) {
		return 0, false
	}
	return copy(dst, src), true
}

// InvariantUTF8 is the built-in passthrough table.
var InvariantUTF8 SymbolTable = invariantUTF8{}

// EncodingTable adapts a golang.org/x/text encoding.Encoding to the
// SymbolTable interface. Encoding happens directly into the caller's
// destination with no intermediate allocation.
type EncodingTable struct {
	enc encoding.Encoding
}

// NewEncodingTable wraps enc as a SymbolTable.
func NewEncodingTable(enc encoding.Encoding) EncodingTable {
	return EncodingTable{enc: enc}
}

func (t EncodingTable) Invariant() bool { return false }

func (t EncodingTable) Encode(dst, src []byte) (int, bool) {
	nDst, nSrc, err := t.enc.NewEncoder().Transform(dst, src, true)
	if err != nil || nSrc != len(src) {
		return 0, false
	}
	return nDst, true
}

var tables utils.TypedSyncMap[string, SymbolTable]

func init() {
	tables.Store("utf-8", InvariantUTF8)
}

// RegisterSymbolTable makes table available under name for LookupSymbolTable.
// Registering an existing name replaces the previous table.
func RegisterSymbolTable(name string, table SymbolTable) {
	tables.Store(name, table)
}

// LookupSymbolTable returns the table registered under name. The passthrough
// table is pre-registered as "utf-8".
func LookupSymbolTable(name string) (SymbolTable, bool) {
	return tables.Load(name)
}

// TryFormat writes the value into dst. Only the default empty format
// specifier is supported; anything else fails with ErrInvalidFormat. A nil
// or invariant table copies the UTF-8 bytes directly, reporting false with
// nothing written when dst is too small. Any other table receives the bytes
// to transcode and its verdict is returned as-is.
func (s String) TryFormat(dst []byte, format string, table SymbolTable) (n int, ok bool, err error) {
	if format != "" {
		return 0, false, ErrInvalidFormat
	}
	if table == nil || table.Invariant() {
		if len(dst) < s.buf.Len() {
			return 0, false, nil
		}
		return copy(dst, s.buf.Bytes()), true, nil
	}
	n, ok = table.Encode(dst, s.buf.Bytes())
	return n, ok, nil
}
