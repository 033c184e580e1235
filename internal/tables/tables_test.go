package tables

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

func TestWidths(t *testing.T) {
	for w := 1; w <= utf8.UTFMax; w++ {
		rs := Runes(w)
		if len(rs) == 0 {
			t.Fatalf("Runes(%d): empty table", w)
		}
		if !slices.IsSorted(rs) {
			t.Errorf("Runes(%d): table is not sorted", w)
		}
		for _, r := range rs {
			if n := utf8.RuneLen(r); n != w {
				t.Errorf("Runes(%d): rune %U has encoded width %d", w, r, n)
			}
			if !utf8.ValidRune(r) {
				t.Errorf("Runes(%d): invalid rune %U", w, r)
			}
			if !unicode.IsGraphic(r) && r != utf8.RuneError {
				t.Errorf("Runes(%d): rune %U is not graphic", w, r)
			}
		}
	}
}

func TestRunesPanics(t *testing.T) {
	for _, w := range []int{-1, 0, utf8.UTFMax + 1} {
		w := w
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Runes(%d): expected panic", w)
				}
			}()
			Runes(w)
		}()
	}
}

func TestAll(t *testing.T) {
	all := All()
	want := len(Width1) + len(Width2) + len(Width3) + len(Width4)
	if len(all) != want {
		t.Fatalf("All() returned %d runes; want: %d", len(all), want)
	}
	seen := make(map[rune]bool, len(all))
	for _, r := range all {
		if seen[r] {
			t.Errorf("All(): duplicate rune %U", r)
		}
		seen[r] = true
	}
}
