// Package tables holds sample Unicode code points grouped by UTF-8 encoded
// width. The randomized tests use them to build strings whose character
// boundaries straddle arbitrary byte offsets.
package tables

import "unicode/utf8"

var widths = [utf8.UTFMax + 1][]rune{
	1: Width1,
	2: Width2,
	3: Width3,
	4: Width4,
}

// Runes returns the sample runes whose UTF-8 encoding is exactly width
// bytes long. It panics if width is not in [1, utf8.UTFMax].
func Runes(width int) []rune {
	if width < 1 || width > utf8.UTFMax {
		panic("tables: invalid UTF-8 width")
	}
	return widths[width]
}

// All returns the sample runes of every width, in increasing width order.
func All() []rune {
	all := make([]rune, 0, len(Width1)+len(Width2)+len(Width3)+len(Width4))
	for w := 1; w <= utf8.UTFMax; w++ {
		all = append(all, widths[w]...)
	}
	return all
}
