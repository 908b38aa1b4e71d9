package utf8str

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// sameStorage reports whether two values share a backing array, the
// observable form of the zero-copy contract.
func sameStorage(a, b String) bool {
	if a.Len() == 0 || b.Len() == 0 {
		return false
	}
	return unsafe.SliceData(a.buf.Bytes()) == unsafe.SliceData(b.buf.Bytes())
}

func TestSubstringZeroReturnsReceiver(t *testing.T) {
	s := fixture()
	require.True(t, sameStorage(s, s.Substring(0)))
}

func TestSubstringSuffix(t *testing.T) {
	s := fixture()

	suffix := s.Substring(8)
	require.Equal(t, "wörld", suffix.String())
	require.True(t, sameStorage(s.Substring(8), suffix), "suffix is a view, not a copy")

	require.True(t, s.Substring(s.Len()).IsEmpty())
}

func TestSubstringRange(t *testing.T) {
	s := fixture()

	t.Run("zero length yields Empty", func(t *testing.T) {
		got := s.SubstringRange(0, 0)
		require.True(t, got.Equals(Empty))
		got = s.SubstringRange(3, 0)
		require.True(t, got.Equals(Empty))
	})

	t.Run("full range returns the receiver", func(t *testing.T) {
		got := s.SubstringRange(0, s.Len())
		require.True(t, sameStorage(s, got))
	})

	t.Run("interior range aliases the storage", func(t *testing.T) {
		got := s.SubstringRange(0, 6)
		require.Equal(t, "héllo", got.String())
		require.True(t, sameStorage(s, got))

		got = s.SubstringRange(8, 6)
		require.Equal(t, "wörld", got.String())
	})
}

func TestSubstringBoundaryValidation(t *testing.T) {
	s := fixture()

	require.True(t, s.IsBoundary(0))
	require.True(t, s.IsBoundary(1), "start of é")
	require.False(t, s.IsBoundary(2), "inside é")
	require.True(t, s.IsBoundary(s.Len()))
	require.False(t, s.IsBoundary(-1))
	require.False(t, s.IsBoundary(s.Len()+1))

	require.Panics(t, func() { s.Substring(2) }, "mid-code-point offset")
	require.Panics(t, func() { s.Substring(-1) })
	require.Panics(t, func() { s.Substring(s.Len() + 1) })
	require.Panics(t, func() { s.SubstringRange(1, 1) }, "end lands inside é")
	require.Panics(t, func() { s.SubstringRange(0, -1) })
}

func TestSubstringFrom(t *testing.T) {
	s := fixture()

	got, ok := s.SubstringFrom(FromBytes([]byte(", ")))
	require.True(t, ok)
	require.Equal(t, ", wörld", got.String())

	got, ok = s.SubstringFromRune('w')
	require.True(t, ok)
	require.Equal(t, "wörld", got.String())

	got, ok = s.SubstringFrom(FromBytes([]byte("absent")))
	require.False(t, ok)
	require.True(t, got.Equals(Empty), "failed lookup leaves the default value")
}

func TestSubstringTo(t *testing.T) {
	s := fixture()

	got, ok := s.SubstringTo(FromBytes([]byte(", ")))
	require.True(t, ok)
	require.Equal(t, "héllo", got.String())

	got, ok = s.SubstringToRune(',')
	require.True(t, ok)
	require.Equal(t, "héllo", got.String())

	got, ok = s.SubstringToRune('z')
	require.False(t, ok)
	require.True(t, got.Equals(Empty))
}

// The try-style slices fail exactly when the underlying search misses.
func TestSubstringFromMatchesIndexOf(t *testing.T) {
	s := fixture()
	for _, delim := range []String{
		FromBytes([]byte("ö")),
		FromBytes([]byte("xyz")),
		FromBytes([]byte("h")),
		FromBytes([]byte("d")),
	} {
		_, ok := s.SubstringFrom(delim)
		require.Equal(t, s.IndexOf(delim) != NotFound, ok)
	}
}

func TestTrim(t *testing.T) {
	s := FromBytes([]byte("  héllo  "))

	require.Equal(t, "héllo  ", s.TrimStartFunc(func(r rune) bool { return r == ' ' }).String())
	require.Equal(t, "  héllo", s.TrimEndFunc(func(r rune) bool { return r == ' ' }).String())
	require.Equal(t, "héllo", s.TrimFunc(func(r rune) bool { return r == ' ' }).String())
	require.Equal(t, "héllo", s.Trim(' ').String())

	trimmed := s.Trim(' ')
	require.True(t, sameStorage(s.SubstringRange(2, 5), trimmed), "trim is a view, not a copy")

	all := FromBytes([]byte("aaa"))
	require.True(t, all.Trim('a').IsEmpty())
	require.True(t, Empty.Trim(' ').IsEmpty())

	require.Equal(t, "héllo", FromBytes([]byte("ööhélloöö")).Trim('ö').String())
}
