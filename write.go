package inlinable

import "unicode/utf8"

// Write appends p, which must be valid UTF-8, implementing io.Writer. It
// returns ErrInvalidUTF8 without mutating the string if p is not valid
// UTF-8; it never fails for space.
func (s *String) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, ErrInvalidUTF8
	}
	if s.spilled {
		s.heap = append(s.heap, p...)
		return len(p), nil
	}
	if s.inline.Len()+len(p) <= Capacity {
		s.inline.n += copy(s.inline.b[s.inline.n:], p)
		s.inline.check()
		return len(p), nil
	}
	heap := make([]byte, 0, s.inline.Len()+len(p))
	heap = append(heap, s.inline.Bytes()...)
	heap = append(heap, p...)
	s.setHeap(heap)
	return len(p), nil
}

// WriteString appends str, implementing io.StringWriter. The returned
// error is always nil.
func (s *String) WriteString(str string) (int, error) {
	s.PushString(str)
	return len(str), nil
}

// WriteRune appends the UTF-8 encoding of r and returns its encoded
// length. The returned error is always nil.
func (s *String) WriteRune(r rune) (int, error) {
	n := s.Len()
	s.Push(r)
	return s.Len() - n, nil
}

// WriteByte appends c, implementing io.ByteWriter. It returns
// ErrInvalidUTF8 if c is not an ASCII byte, since a lone non-ASCII byte
// cannot be valid UTF-8.
func (s *String) WriteByte(c byte) error {
	if c >= utf8.RuneSelf {
		return ErrInvalidUTF8
	}
	s.Push(rune(c))
	return nil
}

// FromRunes returns a String holding the concatenated UTF-8 encodings of
// rs. Storage for the computable lower bound of one byte per rune is
// reserved up front so that at most one spill occurs.
func FromRunes(rs []rune) String {
	var s String
	s.Grow(len(rs))
	for _, r := range rs {
		s.Push(r)
	}
	return s
}

// FromStrings returns a String holding the concatenation of parts,
// reserving the exact total size up front.
func FromStrings(parts ...string) String {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	var s String
	s.Grow(n)
	for _, p := range parts {
		s.PushString(p)
	}
	return s
}
