// Package strtest provides randomized-input helpers shared by the
// inlinable-string tests.
package strtest

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/winstonewert/inlinable-string/internal/tables"
)

// NewRand returns a pseudo-random source with a random seed. The seed is
// logged so that failures can be reproduced.
func NewRand(t testing.TB) *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		t.Fatal(err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	t.Logf("strtest: seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

// RandRune returns a random sample rune whose UTF-8 encoding is exactly
// width bytes long.
func RandRune(rr *rand.Rand, width int) rune {
	rs := tables.Runes(width)
	return rs[rr.Intn(len(rs))]
}

// RandString returns a random valid UTF-8 string of exactly n bytes, mixing
// encoded widths so that character boundaries land at uneven offsets.
func RandString(rr *rand.Rand, n int) string {
	b := make([]byte, 0, n)
	for len(b) < n {
		w := rr.Intn(utf8.UTFMax) + 1
		if left := n - len(b); w > left {
			w = left
		}
		b = utf8.AppendRune(b, RandRune(rr, w))
	}
	return string(b)
}

// Boundaries returns every character boundary of s, including 0 and len(s).
func Boundaries(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

// NonBoundaries returns every byte offset of s that is strictly inside a
// character's encoding.
func NonBoundaries(s string) []int {
	var offsets []int
	for i := 0; i < len(s); i++ {
		if !utf8.RuneStart(s[i]) {
			offsets = append(offsets, i)
		}
	}
	return offsets
}
