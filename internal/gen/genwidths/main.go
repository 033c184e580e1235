// genwidths generates the UTF-8 width sample tables used by the
// inlinable-string tests (internal/tables/tables.go). The tables must be
// regenerated if the sampling here changes (`go run gen.go`).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/unicode/rangetable"
)

func init() {
	log.SetPrefix("genwidths: ")
	log.SetFlags(log.Lshortfile)
}

var (
	outputFile  = flag.String("out", "internal/tables/tables.go", "write the generated table to `file`")
	sampleSize  = flag.Int("samples", 16, "number of sample runes per UTF-8 width")
	dryRun      = flag.Bool("dry-run", false, "print the generated table instead of writing it")
	graphicOnly = flag.Bool("graphic", true, "restrict samples to graphic code points")
)

// assigned returns one RangeTable covering every assigned code point, built
// from the unicode.Categories tables in deterministic order.
func assigned() *unicode.RangeTable {
	names := maps.Keys(unicode.Categories)
	slices.Sort(names)
	tabs := make([]*unicode.RangeTable, len(names))
	for i, name := range names {
		tabs[i] = unicode.Categories[name]
	}
	return rangetable.Merge(tabs...)
}

// visit visits all runes in rt in order, calling fn for each.
func visit(rt *unicode.RangeTable, fn func(rune)) {
	for _, r16 := range rt.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			fn(r)
		}
	}
	for _, r32 := range rt.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			fn(r)
		}
	}
}

// binByWidth groups the runes of rt by the length of their UTF-8 encoding.
func binByWidth(rt *unicode.RangeTable) [utf8.UTFMax + 1][]rune {
	var bins [utf8.UTFMax + 1][]rune

	var bar *progressbar.ProgressBar
	n := countRunes(rt)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(int64(n))
	} else {
		bar = progressbar.DefaultSilent(int64(n))
	}
	visit(rt, func(r rune) {
		bar.Add(1)
		if *graphicOnly && !unicode.IsGraphic(r) {
			return
		}
		w := utf8.RuneLen(r)
		if w < 1 {
			log.Fatalf("unencodable rune in range table: %U", r)
		}
		bins[w] = append(bins[w], r)
	})
	bar.Finish()
	return bins
}

func countRunes(rt *unicode.RangeTable) int {
	n := 0
	visit(rt, func(rune) { n++ })
	return n
}

// sample selects n elements of s at evenly spaced indices, keeping the
// first and last. It returns s itself when n >= len(s).
func sample[T any](s []T, n int) []T {
	if n >= len(s) {
		return s
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s[i*(len(s)-1)/maxInt(n-1, 1)])
	}
	return out
}

func maxInt[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func generate(bins [utf8.UTFMax + 1][]rune, samples int) ([]byte, error) {
	var w bytes.Buffer
	fmt.Fprintf(&w, "// Code generated by genwidths; DO NOT EDIT.\n\n")
	fmt.Fprintf(&w, "package tables\n\n")
	fmt.Fprintf(&w, "// Sample assigned Unicode code points grouped by the length of their UTF-8\n")
	fmt.Fprintf(&w, "// encoding. Regenerate with: go run gen.go (at the repo root).\n")
	for width := 1; width <= utf8.UTFMax; width++ {
		rs := sample(bins[width], samples)
		if len(rs) == 0 {
			return nil, fmt.Errorf("no sample runes of width %d", width)
		}
		slices.Sort(rs)
		rs = slices.Compact(rs)
		fmt.Fprintf(&w, "\nvar Width%d = []rune{\n", width)
		for i, r := range rs {
			if i%8 == 0 {
				fmt.Fprintf(&w, "\t")
			}
			fmt.Fprintf(&w, "0x%04X,", r)
			if i%8 == 7 || i == len(rs)-1 {
				fmt.Fprintf(&w, "\n")
			} else {
				fmt.Fprintf(&w, " ")
			}
		}
		fmt.Fprintf(&w, "}\n")
	}
	return format.Source(w.Bytes())
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	tmp := name + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, name)
}

func realMain() error {
	bins := binByWidth(assigned())
	src, err := generate(bins, *sampleSize)
	if err != nil {
		return err
	}
	if *dryRun {
		_, err := os.Stdout.Write(src)
		return err
	}
	return writeFile(*outputFile, src)
}

func main() {
	flag.Parse()
	if err := realMain(); err != nil {
		log.Fatal(err)
	}
}
