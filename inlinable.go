package inlinable

import (
	"unicode/utf8"
	"unsafe"

	"golang.org/x/exp/slices"
)

// A String is an owned, growable UTF-8 string that stores short contents
// inline. It has exactly two representations: an inline one, holding up to
// Capacity bytes in place, and a spilled one backed by a heap-allocated
// buffer. Every operation dispatches on the active representation.
//
// A mutation whose result no longer fits inline moves the content to the
// heap. The move is all-or-nothing: the heap buffer is fully built before
// the representation is swapped, so a String is never observed in a
// half-applied state. A spilled String never moves back inline on its own;
// only ShrinkToFit does that.
//
// A String must not be copied while a mutation is in flight, and any view
// obtained from Bytes or UnsafeString is invalidated by the next mutation.
// The zero value is an empty inline String ready to use.
type String struct {
	inline  InlineString
	heap    []byte // active iff spilled
	spilled bool
}

// New returns an empty inline String. It is equivalent to the zero value.
func New() String {
	return String{}
}

// FromString returns a String holding s, stored inline when s fits.
func FromString(s string) String {
	if len(s) <= Capacity {
		return String{inline: NewInlineString(s)}
	}
	return String{heap: []byte(s), spilled: true}
}

// WithCapacity returns an empty String with room for at least n bytes.
// If n does not exceed Capacity the String is inline (inline storage is
// fixed and cannot be pre-sized); otherwise it is spilled with a buffer of
// capacity n.
func WithCapacity(n int) String {
	if n <= Capacity {
		return String{}
	}
	return String{heap: make([]byte, 0, n), spilled: true}
}

// FromBytes returns a String holding b, or ErrInvalidUTF8 if b is not
// valid UTF-8. The String takes ownership of b; the caller must not use b
// afterwards.
func FromBytes(b []byte) (String, error) {
	if !utf8.Valid(b) {
		return String{}, ErrInvalidUTF8
	}
	return FromBytesUnchecked(b), nil
}

// FromBytesUnchecked is like FromBytes except that it does not validate b.
//
// This is an escape hatch for callers that have independently proven b is
// valid UTF-8. Passing invalid UTF-8 breaks the String's invariants and
// the behavior of later operations is undefined.
func FromBytesUnchecked(b []byte) String {
	return String{heap: b, spilled: true}
}

func (s *String) check() {
	if debug {
		if s.spilled {
			if !utf8.Valid(s.heap) {
				panic("inlinable: internal error: contents are not valid UTF-8")
			}
		} else {
			if s.heap != nil {
				panic("inlinable: internal error: inline String holds a heap buffer")
			}
			s.inline.check()
		}
	}
}

// setHeap installs b as the spilled representation. The inline buffer is
// only cleared here, after b is complete.
func (s *String) setHeap(b []byte) {
	s.heap = b
	s.inline = InlineString{}
	s.spilled = true
	s.check()
}

// IsInline reports whether the contents are currently stored inline.
// Equality and ordering never depend on the representation; this is an
// observability hook for allocation-sensitive callers and tests.
func (s *String) IsInline() bool {
	return !s.spilled
}

// Len returns the number of bytes in the string.
func (s *String) Len() int {
	if s.spilled {
		return len(s.heap)
	}
	return s.inline.Len()
}

// Cap returns the number of bytes the string can hold without allocating:
// Capacity while inline, the heap buffer's capacity while spilled.
func (s *String) Cap() int {
	if s.spilled {
		return cap(s.heap)
	}
	return Capacity
}

// String returns a copy of the contents as a string.
func (s *String) String() string {
	s.check()
	if s.spilled {
		return string(s.heap)
	}
	return s.inline.String()
}

// Bytes returns the contents as a byte slice. The slice aliases the
// string's storage and is invalidated by the next mutation.
func (s *String) Bytes() []byte {
	s.check()
	if s.spilled {
		return s.heap
	}
	return s.inline.Bytes()
}

// UnsafeString returns the contents as a string without copying. The
// result shares memory with the String and is invalidated by the next
// mutation; callers that retain it longer must use String instead.
func (s *String) UnsafeString() string {
	b := s.Bytes()
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// PushString appends str. Unlike InlineString.PushString it cannot fail:
// contents that no longer fit inline are moved to the heap.
func (s *String) PushString(str string) {
	if s.spilled {
		s.heap = append(s.heap, str...)
		return
	}
	if s.inline.PushString(str) == nil {
		return
	}
	heap := make([]byte, 0, s.inline.Len()+len(str))
	heap = append(heap, s.inline.Bytes()...)
	heap = append(heap, str...)
	s.setHeap(heap)
}

// Push appends the UTF-8 encoding of r, spilling to the heap if it no
// longer fits inline. An invalid rune is replaced with utf8.RuneError.
func (s *String) Push(r rune) {
	if s.spilled {
		s.heap = utf8.AppendRune(s.heap, r)
		return
	}
	if s.inline.Push(r) == nil {
		return
	}
	heap := make([]byte, 0, s.inline.Len()+utf8.UTFMax)
	heap = append(heap, s.inline.Bytes()...)
	heap = utf8.AppendRune(heap, r)
	s.setHeap(heap)
}

// Insert inserts the UTF-8 encoding of r at byte offset i, spilling to the
// heap if the result no longer fits inline.
//
// Insert panics if i is out of range or does not lie on a character
// boundary, in either representation.
func (s *String) Insert(i int, r rune) {
	if s.spilled {
		checkBoundary("String.Insert", s.heap, i)
		var buf [utf8.UTFMax]byte
		enc := utf8.AppendRune(buf[:0], r)
		s.heap = slices.Insert(s.heap, i, enc...)
		s.check()
		return
	}
	if s.inline.Insert(i, r) == nil {
		return
	}
	// The offset was validated by the failed inline insert.
	heap := make([]byte, 0, s.inline.Len()+utf8.UTFMax)
	heap = append(heap, s.inline.Bytes()[:i]...)
	heap = utf8.AppendRune(heap, r)
	heap = append(heap, s.inline.Bytes()[i:]...)
	s.setHeap(heap)
}

// Remove removes the character at byte offset i and returns it.
//
// Remove panics if there is no character at i: the offset is out of range
// or does not lie on a character boundary.
func (s *String) Remove(i int) rune {
	if !s.spilled {
		return s.inline.Remove(i)
	}
	if i == len(s.heap) {
		panicRange("String.Remove", i)
	}
	checkBoundary("String.Remove", s.heap, i)
	r, size := utf8.DecodeRune(s.heap[i:])
	s.heap = slices.Delete(s.heap, i, i+size)
	s.check()
	return r
}

// Pop removes the last character and returns it. The second return value
// is false if the string is empty.
func (s *String) Pop() (rune, bool) {
	if !s.spilled {
		return s.inline.Pop()
	}
	if len(s.heap) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(s.heap)
	s.heap = s.heap[:len(s.heap)-size]
	s.check()
	return r, true
}

// Truncate shortens the string to n bytes without changing the
// representation. It panics if n is greater than the current length or
// does not lie on a character boundary.
func (s *String) Truncate(n int) {
	if !s.spilled {
		s.inline.Truncate(n)
		return
	}
	checkBoundary("String.Truncate", s.heap, n)
	s.heap = s.heap[:n]
}

// Reset truncates the string to zero length. A spilled String keeps its
// heap buffer; use ShrinkToFit to return to inline storage.
func (s *String) Reset() {
	if s.spilled {
		s.heap = s.heap[:0]
		return
	}
	s.inline.Reset()
}

// Grow ensures the string has room for at least n more bytes. While inline
// it is a no-op unless Len()+n exceeds Capacity, in which case the
// contents spill to a heap buffer of at least that size; while spilled it
// grows the buffer, allocating amortized extra space.
//
// Grow panics if n is negative.
func (s *String) Grow(n int) {
	if n < 0 {
		panic("inlinable.String.Grow: negative count")
	}
	if s.spilled {
		s.heap = slices.Grow(s.heap, n)
		return
	}
	if s.inline.Len()+n <= Capacity {
		return
	}
	heap := make([]byte, 0, s.inline.Len()+n)
	heap = append(heap, s.inline.Bytes()...)
	s.setHeap(heap)
}

// GrowExact is like Grow but allocates no more space than requested.
func (s *String) GrowExact(n int) {
	if n < 0 {
		panic("inlinable.String.GrowExact: negative count")
	}
	if !s.spilled {
		s.Grow(n)
		return
	}
	if cap(s.heap)-len(s.heap) < n {
		heap := make([]byte, len(s.heap), len(s.heap)+n)
		copy(heap, s.heap)
		s.heap = heap
	}
}

// ShrinkToFit drops excess capacity. A spilled String whose contents fit
// inline moves back to inline storage, releasing the heap buffer;
// otherwise the heap buffer is reallocated to the exact length. Calling it
// again is a no-op.
func (s *String) ShrinkToFit() {
	if !s.spilled {
		return
	}
	if len(s.heap) <= Capacity {
		var is InlineString
		is.n = copy(is.b[:], s.heap)
		s.inline = is
		s.heap = nil
		s.spilled = false
		s.check()
		return
	}
	if cap(s.heap) > len(s.heap) {
		heap := make([]byte, len(s.heap))
		copy(heap, s.heap)
		s.heap = heap
	}
}
