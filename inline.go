package inlinable

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

// Capacity is the number of bytes of inline storage. The length of an
// InlineString may never exceed it.
//
// The constant governs static storage layout and is deliberately not
// configurable at runtime.
const Capacity = 32

// ErrNotEnoughSpace is returned when an operation on an InlineString would
// exceed its fixed capacity. The operation makes no change to the string.
var ErrNotEnoughSpace = errors.New("inlinable: not enough space")

// ErrInvalidUTF8 is returned when raw input bytes do not form valid UTF-8.
var ErrInvalidUTF8 = errors.New("inlinable: invalid UTF-8")

// WARN: DEV ONLY
const debug = false

// An InlineString is a short UTF-8 string stored entirely in place, with no
// heap allocation. It may be no longer than Capacity bytes.
//
// The capacity restriction makes operations that are infallible on an
// ordinary string fallible here: mutators report ErrNotEnoughSpace when the
// result would not fit, and make no change. InlineString is therefore not a
// drop-in replacement for a plain string in the way that String aims to be.
// Use it only when the size restriction is acceptable and avoiding
// allocation matters.
//
// The zero value is an empty string ready to use.
type InlineString struct {
	n int
	b [Capacity]byte
}

// check verifies the internal invariants: the length is within capacity and
// the used bytes are valid UTF-8. A violation is an internal consistency
// error, never a caller error.
func (s *InlineString) check() {
	if debug {
		if s.n < 0 || s.n > Capacity {
			panic("inlinable: internal error: length greater than capacity")
		}
		if !utf8.Valid(s.b[:s.n]) {
			panic("inlinable: internal error: contents are not valid UTF-8")
		}
	}
}

// NewInlineString returns an InlineString holding s.
//
// It panics if len(s) > Capacity: the caller is expected to have checked
// the size, the same way a slicing expression expects a valid index.
func NewInlineString(s string) InlineString {
	if len(s) > Capacity {
		panic("inlinable.NewInlineString: string length " + strconv.Itoa(len(s)) +
			" exceeds capacity " + strconv.Itoa(Capacity))
	}
	var is InlineString
	is.n = copy(is.b[:], s)
	is.check()
	return is
}

// Len returns the number of bytes in the string.
func (s *InlineString) Len() int {
	s.check()
	return s.n
}

// String returns a copy of the contents as a string.
func (s *InlineString) String() string {
	s.check()
	return string(s.b[:s.n])
}

// Bytes returns the used portion of the inline storage. The slice aliases
// the string's storage and is invalidated by the next mutation.
func (s *InlineString) Bytes() []byte {
	s.check()
	return s.b[:s.n]
}

// Array returns the full backing array with the unused tail zeroed.
func (s *InlineString) Array() [Capacity]byte {
	s.check()
	a := s.b
	for i := s.n; i < Capacity; i++ {
		a[i] = 0
	}
	return a
}

// PushString appends str. If the result would exceed Capacity it returns
// ErrNotEnoughSpace and the string is unchanged; there is no partial copy.
func (s *InlineString) PushString(str string) error {
	s.check()
	if s.n+len(str) > Capacity {
		return ErrNotEnoughSpace
	}
	s.n += copy(s.b[s.n:], str)
	s.check()
	return nil
}

// Push appends the UTF-8 encoding of r. If the encoded character would not
// fit it returns ErrNotEnoughSpace and the string is unchanged.
//
// Like utf8.AppendRune, an invalid rune is replaced with utf8.RuneError.
func (s *InlineString) Push(r rune) error {
	s.check()
	var buf [utf8.UTFMax]byte
	enc := utf8.AppendRune(buf[:0], r)
	if s.n+len(enc) > Capacity {
		return ErrNotEnoughSpace
	}
	s.n += copy(s.b[s.n:], enc)
	s.check()
	return nil
}

// Insert inserts the UTF-8 encoding of r at byte offset i, shifting the
// bytes after it. If the encoded character would not fit it returns
// ErrNotEnoughSpace and the string is unchanged.
//
// Insert panics if i is out of range or does not lie on a character
// boundary.
func (s *InlineString) Insert(i int, r rune) error {
	s.check()
	checkBoundary("InlineString.Insert", s.b[:s.n], i)
	var buf [utf8.UTFMax]byte
	enc := utf8.AppendRune(buf[:0], r)
	if s.n+len(enc) > Capacity {
		return ErrNotEnoughSpace
	}
	// The ranges overlap; copy handles that.
	copy(s.b[i+len(enc):s.n+len(enc)], s.b[i:s.n])
	copy(s.b[i:], enc)
	s.n += len(enc)
	s.check()
	return nil
}

// Remove removes the character at byte offset i and returns it, shifting
// the bytes after it left to close the gap.
//
// Remove panics if there is no character at i: the offset is out of range
// or does not lie on a character boundary.
func (s *InlineString) Remove(i int) rune {
	s.check()
	if i == s.n {
		panicRange("InlineString.Remove", i)
	}
	checkBoundary("InlineString.Remove", s.b[:s.n], i)
	r, size := utf8.DecodeRune(s.b[i:s.n])
	copy(s.b[i:], s.b[i+size:s.n])
	s.n -= size
	s.check()
	return r
}

// Pop removes the last character and returns it. The second return value
// is false if the string is empty.
func (s *InlineString) Pop() (rune, bool) {
	s.check()
	if s.n == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(s.b[:s.n])
	s.n -= size
	s.check()
	return r, true
}

// Truncate shortens the string to n bytes. It panics if n is greater than
// the current length or does not lie on a character boundary.
func (s *InlineString) Truncate(n int) {
	s.check()
	checkBoundary("InlineString.Truncate", s.b[:s.n], n)
	s.n = n
	s.check()
}

// Reset truncates the string to zero length.
func (s *InlineString) Reset() {
	s.check()
	s.n = 0
}

// checkBoundary panics unless i is a character boundary of p. i == len(p)
// is a boundary. The check happens before any mutation so an invalid
// offset can never leave a string holding invalid UTF-8.
func checkBoundary(method string, p []byte, i int) {
	if i < 0 || i > len(p) {
		panicRange(method, i)
	}
	if i < len(p) && !utf8.RuneStart(p[i]) {
		panic("inlinable." + method + ": index " + strconv.Itoa(i) +
			" is not a character boundary")
	}
}

func panicRange(method string, i int) {
	panic("inlinable." + method + ": index " + strconv.Itoa(i) + " out of range")
}
