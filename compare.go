package inlinable

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b hold the same bytes. The comparison is by
// content only: an inline string and a spilled string holding the same
// text are equal.
func Equal(a, b *String) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// Compare returns an integer comparing the contents of a and b
// lexicographically, as bytes.Compare does.
func Compare(a, b *String) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// EqualString reports whether the string holds exactly t.
func (s *String) EqualString(t string) bool {
	return string(s.Bytes()) == t
}

// Hash64 returns the xxHash digest of the contents. The digest depends on
// the bytes only, never on the representation, so it is stable across a
// spill or a ShrinkToFit.
func (s *String) Hash64() uint64 {
	return xxhash.Sum64(s.Bytes())
}
