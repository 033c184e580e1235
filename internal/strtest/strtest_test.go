package strtest

import (
	"testing"
	"unicode/utf8"
)

func TestRandString(t *testing.T) {
	rr := NewRand(t)
	for i := 0; i < 1000; i++ {
		n := rr.Intn(64)
		s := RandString(rr, n)
		if len(s) != n {
			t.Fatalf("RandString(%d) returned %d bytes", n, len(s))
		}
		if !utf8.ValidString(s) {
			t.Fatalf("RandString(%d) = %q: invalid UTF-8", n, s)
		}
	}
}

func TestRandRune(t *testing.T) {
	rr := NewRand(t)
	for w := 1; w <= utf8.UTFMax; w++ {
		for i := 0; i < 100; i++ {
			r := RandRune(rr, w)
			if utf8.RuneLen(r) != w {
				t.Fatalf("RandRune(%d) = %U: encoded width %d", w, r, utf8.RuneLen(r))
			}
		}
	}
}

func TestBoundaries(t *testing.T) {
	const s = "aß世𝄞" // widths 1, 2, 3, 4
	got := Boundaries(s)
	want := []int{0, 1, 3, 6, 10}
	if len(got) != len(want) {
		t.Fatalf("Boundaries(%q) = %v; want: %v", s, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Boundaries(%q) = %v; want: %v", s, got, want)
		}
	}

	bad := NonBoundaries(s)
	wantBad := []int{2, 4, 5, 7, 8, 9}
	if len(bad) != len(wantBad) {
		t.Fatalf("NonBoundaries(%q) = %v; want: %v", s, bad, wantBad)
	}
	for i := range wantBad {
		if bad[i] != wantBad[i] {
			t.Fatalf("NonBoundaries(%q) = %v; want: %v", s, bad, wantBad)
		}
	}
}
