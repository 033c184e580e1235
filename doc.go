// Package inlinable provides [String], an owned, growable UTF-8 string
// that stores short strings inline and avoids heap allocation, along with
// the more restrictive [InlineString], a fixed-capacity string that never
// allocates.
//
// A String holds up to [Capacity] bytes directly in its own storage.
// Content that no longer fits is transparently moved to a heap-allocated
// buffer, after which the String behaves like a conventional growable
// string. The reverse move happens only on an explicit [String.ShrinkToFit].
//
// Both types maintain valid UTF-8 at every observable point. Running out
// of inline space is a reported condition ([ErrNotEnoughSpace]) on
// InlineString and is absorbed internally by String; passing a byte offset
// that does not lie on a character boundary is a programmer error and
// panics, the same way out-of-range slice indexing does.
package inlinable
