package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declNames(d ast.Decl) []string {
	gd, _ := d.(*ast.GenDecl)
	if gd == nil || gd.Tok != token.VAR {
		return nil
	}
	var names []string
	for _, spec := range gd.Specs {
		if vs, _ := spec.(*ast.ValueSpec); vs != nil {
			for _, id := range vs.Names {
				names = append(names, id.Name)
			}
		}
	}
	return names
}

func TestSample(t *testing.T) {
	s := []rune("abcdefghij")
	assert.Equal(t, s, sample(s, len(s)), "n == len(s) returns s")
	assert.Equal(t, s, sample(s, len(s)+1), "n > len(s) returns s")
	assert.Empty(t, sample(s, 0))
	assert.Equal(t, []rune{'a'}, sample(s, 1))

	got := sample(s, 4)
	require.Len(t, got, 4)
	assert.Equal(t, 'a', got[0], "sample keeps the first element")
	assert.Equal(t, 'j', got[3], "sample keeps the last element")
}

func TestAssigned(t *testing.T) {
	rt := assigned()
	n := countRunes(rt)
	// Sanity bounds: every Unicode version in supported Go releases
	// assigns far more than 100k and fewer than MaxRune code points.
	assert.Greater(t, n, 100_000)
	assert.Less(t, n, int(utf8.MaxRune))
}

func TestGenerate(t *testing.T) {
	bins := binByWidth(assigned())
	for w := 1; w <= utf8.UTFMax; w++ {
		require.NotEmpty(t, bins[w], "no runes of width %d", w)
		for _, r := range bins[w][:min(len(bins[w]), 64)] {
			assert.Equal(t, w, utf8.RuneLen(r), "rune %U binned at width %d", r, w)
		}
	}

	src, err := generate(bins, *sampleSize)
	require.NoError(t, err)

	// The output must be a valid, parseable Go source file.
	fset := token.NewFileSet()
	af, err := parser.ParseFile(fset, "tables.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "tables", af.Name.Name)

	var names []string
	for _, d := range af.Decls {
		names = append(names, declNames(d)...)
	}
	assert.Equal(t, []string{"Width1", "Width2", "Width3", "Width4"}, names)
}
