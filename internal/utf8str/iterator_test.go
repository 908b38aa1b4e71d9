package utf8str

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterateForward(t *testing.T) {
	s := FromBytes([]byte("héllo"))

	wantRunes := []rune{'h', 'é', 'l', 'l', 'o'}
	wantOffsets := []int{0, 1, 3, 4, 5}

	var runes []rune
	var offsets []int
	for it := s.Iterate(); it.Next(); {
		runes = append(runes, it.Rune())
		offsets = append(offsets, it.Offset())
	}
	require.Equal(t, wantRunes, runes)
	require.Equal(t, wantOffsets, offsets)
}

func TestIterateOffsetsAreSliceable(t *testing.T) {
	s := fixture()
	for it := s.Iterate(); it.Next(); {
		require.True(t, s.Substring(it.Offset()).StartsWithRune(it.Rune()))
	}
}

func TestIterateEmptyYieldsNothing(t *testing.T) {
	it := Empty.Iterate()
	require.False(t, it.Next())
}

func TestIteratorIsSinglePass(t *testing.T) {
	s := FromBytes([]byte("ab"))
	it := s.Iterate()
	for it.Next() {
	}
	require.False(t, it.Next(), "exhausted iterator stays exhausted")

	// A fresh iterator restarts the traversal.
	it2 := s.Iterate()
	require.True(t, it2.Next())
	require.Equal(t, 'a', it2.Rune())
}

func TestIterateBackward(t *testing.T) {
	s := FromBytes([]byte("héllo"))

	wantRunes := []rune{'o', 'l', 'l', 'é', 'h'}
	wantOffsets := []int{5, 4, 3, 1, 0}

	var runes []rune
	var offsets []int
	for it := s.IterateBackward(); it.Next(); {
		runes = append(runes, it.Rune())
		offsets = append(offsets, it.Offset())
	}
	require.Equal(t, wantRunes, runes)
	require.Equal(t, wantOffsets, offsets)
}

func TestIterateBackwardEmpty(t *testing.T) {
	require.False(t, Empty.IterateBackward().Next())
}

func TestIterateBackwardMirrorsForward(t *testing.T) {
	s := fixture()

	var forward []rune
	for it := s.Iterate(); it.Next(); {
		forward = append(forward, it.Rune())
	}
	var backward []rune
	for it := s.IterateBackward(); it.Next(); {
		backward = append(backward, it.Rune())
	}
	require.Equal(t, len(forward), len(backward))
	for i := range forward {
		require.Equal(t, forward[i], backward[len(backward)-1-i])
	}
}

func TestIterateStopsOnMalformedSequence(t *testing.T) {
	// FromBytes trusts the caller, so a broken buffer is representable.
	// Iteration must stop rather than spin or panic.
	s := FromBytes([]byte{'a', 0xff, 'b'})
	it := s.Iterate()
	require.True(t, it.Next())
	require.Equal(t, 'a', it.Rune())
	require.False(t, it.Next())
	require.False(t, it.Next())
}
