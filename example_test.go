package inlinable_test

import (
	"fmt"

	inlinable "github.com/winstonewert/inlinable-string"
)

func ExampleString() {
	// Small strings are stored inline and perform no heap allocation.
	s := inlinable.FromString("small")
	fmt.Println(s.IsInline())
	fmt.Println(s.Cap() == inlinable.Capacity)

	// Contents are transparently moved to the heap when they grow too big.
	s.PushString("a really long string that is much bigger than the inline capacity")
	fmt.Println(s.IsInline())
	fmt.Println(s.Cap() > inlinable.Capacity)
	// Output:
	// true
	// true
	// false
	// true
}

func ExampleInlineString() {
	var s inlinable.InlineString
	if err := s.PushString("hi world"); err != nil {
		panic(err)
	}
	fmt.Println(s.String())

	// Contents that exceed the fixed capacity are refused and the string
	// is left unchanged.
	err := s.PushString("a really long string that is much bigger than the inline capacity")
	fmt.Println(err)
	fmt.Println(s.String())
	// Output:
	// hi world
	// inlinable: not enough space
	// hi world
}

func ExampleString_Pop() {
	s := inlinable.FromString("foo")
	for {
		r, ok := s.Pop()
		if !ok {
			break
		}
		fmt.Printf("%c\n", r)
	}
	// Output:
	// o
	// o
	// f
}

func ExampleString_ShrinkToFit() {
	s := inlinable.WithCapacity(100)
	s.PushString("foo")
	fmt.Println(s.IsInline())

	// ShrinkToFit moves contents that fit back into inline storage.
	s.ShrinkToFit()
	fmt.Println(s.IsInline())
	fmt.Println(s.Cap())
	// Output:
	// false
	// true
	// 32
}

func ExampleString_Insert() {
	s := inlinable.FromString("foo")
	s.Insert(2, 'f')
	fmt.Println(s.String())
	// Output:
	// fofo
}

func ExampleFromRunes() {
	s := inlinable.FromRunes([]rune{'a', 'ß', '世', '𝄞'})
	fmt.Println(s.String())
	fmt.Println(s.Len())
	// Output:
	// aß世𝄞
	// 10
}
